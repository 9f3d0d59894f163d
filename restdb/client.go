// Package restdb implements the RESTful transport to the remote record
// store the tracker Database synchronizes with.
package restdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/invtracker/tracker"
)

// Client speaks the record store's REST protocol: `{server}/{table}` for
// collection operations, `{server}/{table}/{id}` for row operations, query
// parameters percent-encoded. Requests are single blocking round trips with
// no retries.
type Client struct {
	serverURL string
	http      *http.Client
}

// New returns a client for the store at serverURL, like
// "https://store.example.com".
func New(serverURL string) *Client {
	return &Client{serverURL: strings.TrimRight(serverURL, "/"), http: new(http.Client)}
}

// Post creates a row in the table and returns the response body.
func (c *Client) Post(table string, body json.RawMessage) (json.RawMessage, error) {
	return c.do(http.MethodPost, c.tableURL(table), body)
}

// Put updates the row addressed by id and returns the response body.
func (c *Client) Put(table string, id int64, body json.RawMessage) (json.RawMessage, error) {
	return c.do(http.MethodPut, c.rowURL(table, id), body)
}

// Get returns the row addressed by id.
func (c *Client) Get(table string, id int64) (json.RawMessage, error) {
	return c.do(http.MethodGet, c.rowURL(table, id), nil)
}

// Find returns the collection filtered by the given query parameters.
func (c *Client) Find(table string, params url.Values) (json.RawMessage, error) {
	addr := c.tableURL(table)
	if len(params) > 0 {
		addr += "?" + params.Encode()
	}
	return c.do(http.MethodGet, addr, nil)
}

func (c *Client) tableURL(table string) string {
	return c.serverURL + "/" + url.PathEscape(table)
}

func (c *Client) rowURL(table string, id int64) string {
	return c.tableURL(table) + "/" + strconv.FormatInt(id, 10)
}

// do performs a single round trip. A failure to obtain any response is
// ErrUnreachable; a non-success status is ErrRejected.
func (c *Client) do(method, addr string, body json.RawMessage) (json.RawMessage, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, addr, r)
	if err != nil {
		return nil, fmt.Errorf("cannot build request %s %s: %w", method, addr, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot %s %s: %v: %w", method, addr, err, tracker.ErrUnreachable)
	}
	defer resp.Body.Close()

	log.Printf("%v %v/%v %v", method, req.URL.Host, strings.TrimPrefix(req.URL.Path, "/"), resp.Status)
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read response of %s %s: %v: %w", method, addr, err, tracker.ErrUnreachable)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: %s: %w", method, addr, resp.Status, tracker.ErrRejected)
	}
	return content, nil
}

var _ tracker.Client = (*Client)(nil)
