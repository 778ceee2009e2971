package controllers

import (
	"encoding/json"
	"net/http/httptest"
)

func decodeBody(rec *httptest.ResponseRecorder, v interface{}) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}
