// Package http provides the building blocks of typed HTTP API clients.
//
// A Client binds a server base URL to an HTTPClient and enforces a default
// timeout. An Endpoint declares one remote operation: the verb, a path
// template, converters for the call arguments, and a DecodeResponseFunc that
// turns the response into a domain value. Concrete API clients declare their
// endpoints once and call them from their methods:
//
//	var search = httptransport.Get(
//		"search?limit={}",
//		httptransport.DecodeJSONResponse[[]Result],
//		httptransport.Args(httptransport.Int),
//		httptransport.Param("q", httptransport.String),
//	)
//
//	func (c *APIClient) Search(ctx context.Context, limit int, q string) ([]Result, error) {
//		return search.Call(ctx, c.client, []interface{}{limit}, httptransport.Named("q", q))
//	}
package http
