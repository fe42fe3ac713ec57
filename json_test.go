package symcalc_test

import (
	"testing"

	symcalc "github.com/njchilds90/symcalc"
)

func TestToJSON_Number(t *testing.T) {
	a := symcalc.NewArena()
	n := must(t)(a.Number("-7/20"))
	doc, err := a.ToJSON(n)
	if err != nil {
		t.Fatal(err)
	}
	if doc != `{"type":"num","value":"-7/20"}` {
		t.Errorf("got %s", doc)
	}
}

func TestFromJSON_BuildsRawTree(t *testing.T) {
	a := symcalc.NewArena()
	doc := `{"type":"add","left":{"type":"num","value":"1"},"right":{"type":"num","value":"2"}}`
	h, err := a.FromJSON([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	// FromJSON must not simplify.
	if a.String(h) != "(1 + 2)" {
		t.Errorf("want (1 + 2), got %s", a.String(h))
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	a := symcalc.NewArena()
	x := must(t)(a.Symbol("x"))
	e := must(t)(a.Integral(
		must(t)(a.Add(
			must(t)(a.Pow(x, must(t)(a.Int(3)))),
			must(t)(a.Call(symcalc.FuncSin, must(t)(a.Symbol("x")))),
		)),
		"x",
	))
	doc, err := a.ToJSON(e)
	if err != nil {
		t.Fatal(err)
	}
	back, err := a.FromJSON([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(e, back) {
		t.Errorf("round trip changed the tree: %s vs %s", a.String(e), a.String(back))
	}
}

func TestFromMap_SharedCodec(t *testing.T) {
	// Maps decoded by any JSON-shaped codec feed the same builder.
	a := symcalc.NewArena()
	m := map[string]interface{}{
		"type": "call",
		"fn":   "log",
		"arg":  map[string]interface{}{"type": "sym", "name": "y"},
	}
	h, err := a.FromMap(m)
	if err != nil {
		t.Fatal(err)
	}
	if a.String(h) != "log(y)" {
		t.Errorf("want log(y), got %s", a.String(h))
	}
}

func TestFromJSON_Errors(t *testing.T) {
	a := symcalc.NewArena()
	cases := []string{
		`{}`,
		`{"type":"frobnicate"}`,
		`{"type":"num","value":"1.5"}`,
		`{"type":"num","value":7}`,
		`{"type":"sym","name":""}`,
		`{"type":"call","fn":"tan","arg":{"type":"sym","name":"x"}}`,
		`{"type":"add","left":{"type":"num","value":"1"}}`,
		`{"type":"diff","var":"","inner":{"type":"sym","name":"x"}}`,
		`not json`,
	}
	for _, doc := range cases {
		if _, err := a.FromJSON([]byte(doc)); err == nil {
			t.Errorf("FromJSON(%s) should fail", doc)
		}
	}
}
