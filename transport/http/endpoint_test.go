package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/go-kit/restkit/endpoint"
	httptransport "github.com/go-kit/restkit/transport/http"
)

func TestEndpointEndToEnd(t *testing.T) {
	type result struct{ Limit string }

	paths := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.Method + " " + r.URL.RequestURI()
		w.Write([]byte(`{"Limit":"` + r.URL.Query().Get("limit") + `"}`))
	}))
	defer server.Close()

	var (
		client   = mustClient(t, server.URL+"/base/")
		received *http.Response
		search   = httptransport.Get("search?limit={}",
			func(ctx context.Context, r *http.Response) (result, error) {
				received = r
				return httptransport.DecodeJSONResponse[result](ctx, r)
			},
			httptransport.Args(httptransport.Int),
		)
	)

	have, err := search.Call(context.Background(), client, []interface{}{5})
	if err != nil {
		t.Fatal(err)
	}
	if want := (result{Limit: "5"}); want != have {
		t.Errorf("want %+v, have %+v", want, have)
	}
	if received == nil || received.StatusCode != http.StatusOK {
		t.Errorf("decoder didn't receive the response")
	}
	if want, have := "GET /base/search?limit=5", <-paths; want != have {
		t.Errorf("want %s, have %s", want, have)
	}
}

func TestEndpointPositionalArgs(t *testing.T) {
	S, I, B := httptransport.String, httptransport.Int, httptransport.Bool
	for _, testcase := range []struct {
		template   string
		converters []httptransport.Converter
		args       []interface{}
		want       string
	}{
		{"items", nil, nil, "items"},
		{"items/{}", []httptransport.Converter{S}, []interface{}{"a"}, "items/a"},
		{"items/{}/tags/{}", []httptransport.Converter{S, nil}, []interface{}{"a", 3}, "items/a/tags/3"},
		{"items/{1}/{0}", []httptransport.Converter{S, I}, []interface{}{"a", 3}, "items/3/a"},
		{"search?limit={}&flag={}", []httptransport.Converter{I, B}, []interface{}{7.9, "1"}, "search?limit=7&flag=true"},
		{"items/{}", []httptransport.Converter{S, S}, []interface{}{"a", "unused"}, "items/a"},
		{"items/{}", []httptransport.Converter{S, S}, []interface{}{"a"}, "items/a"},
		{"{{literal}}/{}", []httptransport.Converter{S}, []interface{}{"a"}, "{literal}/a"},
		{"relative/path?q={:s}", []httptransport.Converter{S}, []interface{}{"x"}, "relative/path?q=x"},
		{"items/{0!s:s}/tags/{1:s}", []httptransport.Converter{S, I}, []interface{}{"a", 3}, "items/a/tags/3"},
	} {
		var have string
		ep := httptransport.Get[struct{}](testcase.template, nil, httptransport.Args(testcase.converters...))
		if _, err := ep.Call(context.Background(), pathRecorder(&have), testcase.args); err != nil {
			t.Errorf("%s: %v", testcase.template, err)
			continue
		}
		if want := testcase.want; want != have {
			t.Errorf("%s: want %q, have %q", testcase.template, want, have)
		}
	}
}

func TestEndpointTooFewArgs(t *testing.T) {
	ep := httptransport.Get[struct{}]("items/{}/{}", nil, httptransport.Args(httptransport.String, httptransport.String))

	var path string
	_, err := ep.Call(context.Background(), pathRecorder(&path), []interface{}{"a"})

	var ferr *httptransport.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("want *FormatError, have %v", err)
	}
	if path != "" {
		t.Errorf("want no request, have one for %q", path)
	}
}

func TestEndpointTooManyArgs(t *testing.T) {
	ep := httptransport.Get[struct{}]("items/{}", nil, httptransport.Args(httptransport.String))

	_, err := ep.Call(context.Background(), pathRecorder(new(string)), []interface{}{"a", "b"})
	if !errors.Is(err, httptransport.ErrTooManyArgs) {
		t.Fatalf("want ErrTooManyArgs, have %v", err)
	}
	var aerr *httptransport.ArgumentError
	if !errors.As(err, &aerr) || aerr.Index != 1 {
		t.Errorf("want ArgumentError at index 1, have %v", err)
	}
}

func TestEndpointConverterError(t *testing.T) {
	ep := httptransport.Get[struct{}]("items/{}", nil, httptransport.Args(httptransport.Int))

	_, err := ep.Call(context.Background(), pathRecorder(new(string)), []interface{}{"many"})
	var aerr *httptransport.ArgumentError
	if !errors.As(err, &aerr) {
		t.Fatalf("want *ArgumentError, have %v", err)
	}
	if want, have := 0, aerr.Index; want != have {
		t.Errorf("want %d, have %d", want, have)
	}
}

func TestEndpointNamedArgs(t *testing.T) {
	rec := &recorder{}
	client := mustClient(t, "https://api.example/", httptransport.SetClient(rec))
	ep := httptransport.Get[struct{}]("search", nil,
		httptransport.Param("q", httptransport.String),
		httptransport.Params(map[string]httptransport.Converter{"page": httptransport.Int}),
	)

	_, err := ep.Call(context.Background(), client, nil,
		httptransport.Named("q", "x"),
		httptransport.Named("page", "2"),
		httptransport.Header("X-Token", "abc"),
	)
	if err != nil {
		t.Fatal(err)
	}

	if want, have := (url.Values{"q": {"x"}, "page": {"2"}}), rec.req.URL.Query(); !reflect.DeepEqual(want, have) {
		t.Errorf("want query %v, have %v", want, have)
	}
	if want, have := "abc", rec.req.Header.Get("X-Token"); want != have {
		t.Errorf("want header %q, have %q", want, have)
	}
}

func TestEndpointUnknownNamedArg(t *testing.T) {
	ep := httptransport.Get[struct{}]("search", nil, httptransport.Param("q", nil))

	_, err := ep.Call(context.Background(), pathRecorder(new(string)), nil, httptransport.Named("headers", "x"))
	if !errors.Is(err, httptransport.ErrUnknownParam) {
		t.Fatalf("want ErrUnknownParam, have %v", err)
	}
	var aerr *httptransport.ArgumentError
	if !errors.As(err, &aerr) || aerr.Name != "headers" {
		t.Errorf("want ArgumentError for headers, have %v", err)
	}
}

func TestEndpointStatusErrorSkipsDecoder(t *testing.T) {
	client := mustClient(t, "https://api.example/", httptransport.SetClient(&recorder{resp: newResponse(http.StatusTeapot, "short and stout")}))
	ep := httptransport.Get("pot", func(context.Context, *http.Response) (int, error) {
		t.Error("decoder called on error response")
		return 1, nil
	})

	have, err := ep.Call(context.Background(), client, nil)
	var serr *httptransport.StatusError
	if !errors.As(err, &serr) || serr.StatusCode != http.StatusTeapot {
		t.Fatalf("want 418 StatusError, have %v", err)
	}
	if have != 0 {
		t.Errorf("want zero value, have %d", have)
	}
}

func TestEndpointDecoderErrorUnchanged(t *testing.T) {
	want := errors.New("bad payload")
	client := mustClient(t, "https://api.example/", httptransport.SetClient(&recorder{}))
	ep := httptransport.Get("x", func(context.Context, *http.Response) (string, error) { return "", want })

	if _, have := ep.Call(context.Background(), client, nil); want != have {
		t.Errorf("want %v, have %v", want, have)
	}
}

func TestEndpointClosesBody(t *testing.T) {
	body := &closeTracker{Reader: strings.NewReader("hello")}
	resp := newResponse(http.StatusOK, "")
	resp.Body = body
	client := mustClient(t, "https://api.example/", httptransport.SetClient(&recorder{resp: resp}))

	have, err := httptransport.Get("x", httptransport.DecodeBytesResponse).Call(context.Background(), client, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := "hello"; want != string(have) {
		t.Errorf("want %q, have %q", want, have)
	}
	if !body.closed {
		t.Errorf("body not closed")
	}
}

func TestEndpointConstructors(t *testing.T) {
	for _, testcase := range []struct {
		ep   *httptransport.Endpoint[struct{}]
		want string
	}{
		{httptransport.Get[struct{}]("p", nil), "GET"},
		{httptransport.Post[struct{}]("p", nil), "POST"},
		{httptransport.Put[struct{}]("p", nil), "PUT"},
		{httptransport.Patch[struct{}]("p", nil), "PATCH"},
		{httptransport.Delete[struct{}]("p", nil), "DELETE"},
		{httptransport.Update[struct{}]("p", nil), "UPDATE"},
		{httptransport.NewEndpoint[struct{}]("OPTIONS", "p", nil), "OPTIONS"},
	} {
		if want, have := testcase.want, testcase.ep.Method(); want != have {
			t.Errorf("want %s, have %s", want, have)
		}
		if want, have := "p", testcase.ep.Path(); want != have {
			t.Errorf("want %s, have %s", want, have)
		}
	}
}

func TestEndpointMiddleware(t *testing.T) {
	var name string
	requester := requesterFunc(func(ctx context.Context, method, path string, _ ...httptransport.RequestOption) (*http.Response, error) {
		name = endpoint.NameFromContext(ctx)
		return newResponse(http.StatusOK, ""), nil
	})

	ep := httptransport.Delete[struct{}]("items/{}", nil, httptransport.Args(httptransport.String))
	e := endpoint.EndpointNameMiddleware[httptransport.Request, struct{}]("delete_item")(ep.Endpoint(requester))

	if _, err := e(context.Background(), httptransport.Request{Args: []interface{}{"a"}}); err != nil {
		t.Fatal(err)
	}
	if want, have := "delete_item", name; want != have {
		t.Errorf("want %q, have %q", want, have)
	}
}

type requesterFunc func(ctx context.Context, method, path string, options ...httptransport.RequestOption) (*http.Response, error)

func (f requesterFunc) Request(ctx context.Context, method, path string, options ...httptransport.RequestOption) (*http.Response, error) {
	return f(ctx, method, path, options...)
}

func pathRecorder(path *string) httptransport.Requester {
	return requesterFunc(func(_ context.Context, _, p string, _ ...httptransport.RequestOption) (*http.Response, error) {
		*path = p
		return newResponse(http.StatusOK, ""), nil
	})
}

type closeTracker struct {
	*strings.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}
