// cmd/symcalc-server/main.go — Standalone HTTP tool server for symcalc
//
// Exposes the expression engine over HTTP for scripting and agent
// frameworks.
//
// Usage:
//   go run cmd/symcalc-server/main.go -port 8080
//
// Tool call endpoint: POST /tool
// Health endpoint:    GET  /health
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	symcalc "github.com/njchilds90/symcalc"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// toolRequest is one engine call. Expr (and Other, for equal) use the
// package's JSON tree encoding.
type toolRequest struct {
	Op     string                 `json:"op"`
	Expr   map[string]interface{} `json:"expr"`
	Other  map[string]interface{} `json:"other,omitempty"`
	Var    string                 `json:"var,omitempty"`
	Symbol string                 `json:"symbol,omitempty"`
	Value  string                 `json:"value,omitempty"`
}

type toolResponse struct {
	OK     bool    `json:"ok"`
	Result string  `json:"result,omitempty"`
	Number float64 `json:"number,omitempty"`
	Equal  *bool   `json:"equal,omitempty"`
	Error  string  `json:"error,omitempty"`
}

func fail(err error) toolResponse {
	return toolResponse{Error: err.Error()}
}

// handleToolCall runs one request against a fresh arena, so a request can
// never observe another request's handles.
func handleToolCall(req toolRequest) toolResponse {
	a := symcalc.NewArena()
	h, err := a.FromMap(req.Expr)
	if err != nil {
		return fail(err)
	}

	switch req.Op {
	case "render":
		return toolResponse{OK: true, Result: a.String(h)}

	case "dump":
		return toolResponse{OK: true, Result: a.DumpTree(h)}

	case "simplify":
		s, err := a.Simplify(h)
		if err != nil {
			return fail(err)
		}
		return toolResponse{OK: true, Result: a.String(s)}

	case "diff", "int":
		if req.Var == "" {
			return toolResponse{Error: "op " + req.Op + " needs \"var\""}
		}
		var d symcalc.Handle
		if req.Op == "diff" {
			d, err = a.Diff(h, req.Var)
		} else {
			d, err = a.Integral(h, req.Var)
		}
		if err != nil {
			return fail(err)
		}
		s, err := a.Simplify(d)
		if err != nil {
			return fail(err)
		}
		return toolResponse{OK: true, Result: a.String(s)}

	case "subst":
		s, err := a.Substitute(h, req.Symbol, req.Value)
		if err != nil {
			return fail(err)
		}
		return toolResponse{OK: true, Result: a.String(s)}

	case "eval":
		v, err := a.Eval(h, req.Symbol, req.Value)
		if err != nil {
			return fail(err)
		}
		return toolResponse{OK: true, Result: a.String(v)}

	case "evalnum":
		v, err := a.EvalNumeric(h)
		if err != nil {
			return fail(err)
		}
		return toolResponse{OK: true, Number: v}

	case "equal":
		if req.Other == nil {
			return toolResponse{Error: "op equal needs \"other\""}
		}
		o, err := a.FromMap(req.Other)
		if err != nil {
			return fail(err)
		}
		eq := a.Equal(h, o)
		return toolResponse{OK: true, Equal: &eq}
	}
	return toolResponse{Error: fmt.Sprintf("unknown op %q", req.Op)}
}

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	mux := http.NewServeMux()

	// POST /tool — handle a tool call
	mux.HandleFunc("/tool", func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic in /tool: %v\n%s", rec, string(debug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req toolRequest
		if err := dec.Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		// Ensure there's no trailing junk.
		if dec.More() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON: trailing data"})
			return
		}

		resp := handleToolCall(req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	// GET /health — liveness check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("symcalc server listening on %s", addr)
	log.Printf("  POST /tool   — execute an engine call")
	log.Printf("  GET  /health — health check")

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
