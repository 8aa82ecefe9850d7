package main

import (
	"net/http"

	"github.com/centrifugal/centrifuge"
	"github.com/google/uuid"
)

// session assigns every upgrade a fresh session id as its centrifuge
// credential. User identity is resolved later by the in-band auth
// message, so the connection itself carries no user claim.
func session(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		context := r.Context()
		credentials := &centrifuge.Credentials{UserID: uuid.NewString()}
		newContext := centrifuge.SetCredentials(context, credentials)
		r = r.WithContext(newContext)
		h.ServeHTTP(w, r)
	})
}
