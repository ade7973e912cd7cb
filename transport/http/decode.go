package http

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"io"
	"io/ioutil"
	"net/http"
)

// DecodeResponseFunc extracts a user-domain response object from an HTTP
// response object. It's the body of an endpoint: it never sees the call
// arguments, only the response the server sent back. The response body is
// closed by the endpoint once the func returns.
type DecodeResponseFunc[T any] func(context.Context, *http.Response) (response T, err error)

// DecodeJSONResponse is a DecodeResponseFunc that JSON decodes the response
// body into a T.
func DecodeJSONResponse[T any](_ context.Context, r *http.Response) (T, error) {
	var response T
	if err := json.NewDecoder(r.Body).Decode(&response); err != nil {
		var zero T
		return zero, err
	}
	return response, nil
}

// DecodeXMLResponse is a DecodeResponseFunc that XML decodes the response
// body into a T.
func DecodeXMLResponse[T any](_ context.Context, r *http.Response) (T, error) {
	var response T
	if err := xml.NewDecoder(r.Body).Decode(&response); err != nil {
		var zero T
		return zero, err
	}
	return response, nil
}

// DecodeBytesResponse returns the raw response body.
func DecodeBytesResponse(_ context.Context, r *http.Response) ([]byte, error) {
	return ioutil.ReadAll(r.Body)
}

// DecodeNoContent discards the response body. Use it for endpoints whose
// only interesting outcome is the status code.
func DecodeNoContent(_ context.Context, r *http.Response) (struct{}, error) {
	_, err := io.Copy(ioutil.Discard, r.Body)
	return struct{}{}, err
}
