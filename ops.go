package symcalc

// ops threads allocation failures through a chain of node builds so the
// rewrite code reads like the algebra it implements. After the first error
// every build returns InvalidHandle and the error is reported once at the
// end of the operation.
type ops struct {
	a   *Arena
	err error
}

func (o *ops) done(h Handle) (Handle, error) {
	if o.err != nil {
		return InvalidHandle, o.err
	}
	return h, nil
}

func (o *ops) capture(h Handle, err error) Handle {
	if o.err != nil {
		return InvalidHandle
	}
	if err != nil {
		o.err = err
		return InvalidHandle
	}
	return h
}

func (o *ops) number(v Rational) Handle         { return o.capture(o.a.number(v)) }
func (o *ops) int64(n int64) Handle             { return o.capture(o.a.Int(n)) }
func (o *ops) symbol(name string) Handle        { return o.capture(o.a.Symbol(name)) }
func (o *ops) add(l, r Handle) Handle           { return o.capture(o.a.Add(l, r)) }
func (o *ops) mul(l, r Handle) Handle           { return o.capture(o.a.Mul(l, r)) }
func (o *ops) pow(b, e Handle) Handle           { return o.capture(o.a.Pow(b, e)) }
func (o *ops) call(f FuncKind, g Handle) Handle { return o.capture(o.a.Call(f, g)) }
func (o *ops) simplify(h Handle) Handle         { return o.capture(o.a.Simplify(h)) }
