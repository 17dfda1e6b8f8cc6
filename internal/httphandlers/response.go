package httphandlers

import (
	"encoding/json"
	"net/http"
)

type (
	response struct {
		Error   bool        `json:"error"`
		Message string      `json:"message"`
		Data    interface{} `json:"data,omitempty"`
	}

	// dispatchErrorBody is the wire shape the backup dispatcher promises
	// its callers on failure.
	dispatchErrorBody struct {
		Error   string `json:"error"`
		Details string `json:"details,omitempty"`
	}
)

func badRequest(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, err)
}

func notFound(w http.ResponseWriter, err error) {
	writeError(w, http.StatusNotFound, err)
}

func serverError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, err)
}

func unauthorized(w http.ResponseWriter, err error) {
	writeError(w, http.StatusUnauthorized, err)
}

func ok(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, response{
		Message: message,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, errorCode int, err error) {
	errmsg := ""
	if err != nil {
		errmsg = err.Error()
	}
	writeJSON(w, errorCode, response{
		Error:   true,
		Message: errmsg,
	})
}

func dispatchBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, dispatchErrorBody{Error: message})
}

func dispatchServerError(w http.ResponseWriter, message string, err error) {
	body := dispatchErrorBody{Error: message}
	if err != nil {
		body.Details = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, body)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	b, _ := json.Marshal(v)
	w.Write(b)
}
