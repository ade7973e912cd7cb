package http_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	httptransport "github.com/go-kit/restkit/transport/http"
)

func TestDecodeJSONResponse(t *testing.T) {
	type book struct{ Name string }

	have, err := httptransport.DecodeJSONResponse[book](context.Background(), newResponse(http.StatusOK, `{"Name":"Dune"}`))
	if err != nil {
		t.Fatal(err)
	}
	if want := (book{"Dune"}); want != have {
		t.Errorf("want %+v, have %+v", want, have)
	}

	have, err = httptransport.DecodeJSONResponse[book](context.Background(), newResponse(http.StatusOK, `{"Name":`))
	if err == nil {
		t.Errorf("want error, have %+v", have)
	}
	if want := (book{}); want != have {
		t.Errorf("want zero value on error, have %+v", have)
	}
}

func TestDecodeXMLResponse(t *testing.T) {
	type book struct {
		Name string `xml:"name"`
	}

	have, err := httptransport.DecodeXMLResponse[book](context.Background(), newResponse(http.StatusOK, `<book><name>Dune</name></book>`))
	if err != nil {
		t.Fatal(err)
	}
	if want := (book{"Dune"}); want != have {
		t.Errorf("want %+v, have %+v", want, have)
	}
}

func TestDecodeNoContent(t *testing.T) {
	body := &closeTracker{Reader: strings.NewReader("ignored")}
	resp := newResponse(http.StatusNoContent, "")
	resp.Body = body

	if _, err := httptransport.DecodeNoContent(context.Background(), resp); err != nil {
		t.Fatal(err)
	}
	if body.Len() != 0 {
		t.Errorf("want body drained, %d bytes left", body.Len())
	}
}
