package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Stack is an ordered list of middleware. The first layer sees the request
// first and the response last.
type Stack []Middleware

// Chain builds a Stack from the given layers. Nil layers are dropped so
// optional ones can be listed unconditionally.
func Chain(mws ...Middleware) Stack {
	s := make(Stack, 0, len(mws))
	for _, mw := range mws {
		if mw != nil {
			s = append(s, mw)
		}
	}
	return s
}

// With returns a copy of s with mws added as the innermost layers.
func (s Stack) With(mws ...Middleware) Stack {
	out := make(Stack, 0, len(s)+len(mws))
	out = append(out, s...)
	return append(out, Chain(mws...)...)
}

// Then wraps h in every layer of s. Its method value fits chi's Use.
func (s Stack) Then(h http.Handler) http.Handler {
	for i := len(s) - 1; i >= 0; i-- {
		h = s[i](h)
	}
	return h
}

// When returns mw if on is set and nil otherwise.
func When(on bool, mw Middleware) Middleware {
	if !on {
		return nil
	}
	return mw
}
