package shortcut

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/madisonbullard/mcp-server-shortcut/pkg/metricskey"
)

var logger = xlog.NewPackageLogger("github.com/madisonbullard/mcp-server-shortcut", "shortcut")

const (
	// DefaultBaseURL is the Shortcut REST API v3 endpoint.
	DefaultBaseURL = "https://api.app.shortcut.com/api/v3"
	// DefaultSearchPageSize is the number of iterations requested per search.
	DefaultSearchPageSize = 25

	tokenHeader = "Shortcut-Token"
	// upstream status of a completed iteration
	wireStatusDone = "done"
	// max size of an error body kept in the error message
	maxErrorBody = 512
)

// RESTClient implements Client over the Shortcut REST API.
// Once configured, it is safe for concurrent use.
type RESTClient struct {
	baseURL    string
	token      string
	pageSize   int
	httpClient *http.Client
}

// ensure RESTClient implements the Client interface
var _ Client = (*RESTClient)(nil)

// New returns a REST client authenticated with the API token.
func New(token string) (*RESTClient, error) {
	if token == "" {
		return nil, errors.New("shortcut API token is not set")
	}
	return &RESTClient{
		baseURL:    DefaultBaseURL,
		token:      token,
		pageSize:   DefaultSearchPageSize,
		httpClient: http.DefaultClient,
	}, nil
}

// WithBaseURL overrides the API endpoint.
func (c *RESTClient) WithBaseURL(baseURL string) *RESTClient {
	if baseURL != "" {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
	return c
}

// WithHTTPClient sets the HTTP client used for requests.
func (c *RESTClient) WithHTTPClient(client *http.Client) *RESTClient {
	if client != nil {
		c.httpClient = client
	}
	return c
}

// WithSearchPageSize sets the page size of search requests.
func (c *RESTClient) WithSearchPageSize(size int) *RESTClient {
	if size > 0 {
		c.pageSize = size
	}
	return c
}

type memberInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MentionName string `json:"mention_name"`
}

type memberWire struct {
	ID      string `json:"id"`
	Profile struct {
		Name        string `json:"name"`
		MentionName string `json:"mention_name"`
	} `json:"profile"`
}

type iterationWire struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Status      string   `json:"status"`
	AppURL      string   `json:"app_url"`
	GroupIDs    []string `json:"group_ids"`
}

type storyWire struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	StoryType   string   `json:"story_type"`
	Started     bool     `json:"started"`
	Completed   bool     `json:"completed"`
	GroupID     *string  `json:"group_id"`
	EpicID      *int64   `json:"epic_id"`
	IterationID *int64   `json:"iteration_id"`
	OwnerIDs    []string `json:"owner_ids"`
	AppURL      string   `json:"app_url"`
}

type iterationSearchWire struct {
	Data  []*iterationWire `json:"data"`
	Total int              `json:"total"`
}

// GetCurrentUser returns the member that owns the API token.
func (c *RESTClient) GetCurrentUser(ctx context.Context) (*Member, error) {
	var res memberInfo
	found, err := c.get(ctx, "GetCurrentUser", "/member", nil, &res)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("current member not found")
	}
	return &Member{
		ID:          res.ID,
		Name:        res.Name,
		MentionName: res.MentionName,
	}, nil
}

// GetUserMap resolves the member IDs with a single request listing workspace members.
func (c *RESTClient) GetUserMap(ctx context.Context, ids []string) (map[string]*Member, error) {
	res := make(map[string]*Member, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	var list []*memberWire
	if _, err := c.get(ctx, "GetUserMap", "/members", nil, &list); err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	for _, m := range list {
		if m == nil {
			continue
		}
		if _, ok := wanted[m.ID]; ok {
			res[m.ID] = &Member{
				ID:          m.ID,
				Name:        m.Profile.Name,
				MentionName: m.Profile.MentionName,
			}
		}
	}
	return res, nil
}

// GetIteration returns the iteration, or nil if it does not exist.
func (c *RESTClient) GetIteration(ctx context.Context, iterationPublicID int64) (*Iteration, error) {
	var res *iterationWire
	found, err := c.get(ctx, "GetIteration", "/iterations/"+strconv.FormatInt(iterationPublicID, 10), nil, &res)
	if err != nil {
		return nil, err
	}
	if !found || res == nil {
		return nil, nil
	}
	return res.toIteration(), nil
}

// ListIterationStories returns the stories in the iteration,
// or nil if the upstream collection is absent.
func (c *RESTClient) ListIterationStories(ctx context.Context, iterationPublicID int64) ([]*Story, error) {
	var list []*storyWire
	found, err := c.get(ctx, "ListIterationStories", "/iterations/"+strconv.FormatInt(iterationPublicID, 10)+"/stories", nil, &list)
	if err != nil {
		return nil, err
	}
	if !found || list == nil {
		return nil, nil
	}

	stories := make([]*Story, 0, len(list))
	for _, s := range list {
		if s != nil {
			stories = append(stories, s.toStory())
		}
	}
	return stories, nil
}

// SearchIterations returns the first page of iterations matching the query.
func (c *RESTClient) SearchIterations(ctx context.Context, query string) (*IterationSearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page_size", strconv.Itoa(c.pageSize))
	params.Set("detail", "slim")

	var res iterationSearchWire
	if _, err := c.get(ctx, "SearchIterations", "/search/iterations", params, &res); err != nil {
		return nil, err
	}

	result := &IterationSearchResult{Total: res.Total}
	if res.Data != nil {
		result.Iterations = make([]*Iteration, 0, len(res.Data))
		for _, it := range res.Data {
			if it != nil {
				result.Iterations = append(result.Iterations, it.toIteration())
			}
		}
	}
	return result, nil
}

// get performs GET request and decodes JSON response into out.
// It returns false without error when the resource does not exist.
func (c *RESTClient) get(ctx context.Context, operation, path string, params url.Values, out any) (bool, error) {
	started := time.Now()
	defer metricskey.PerfShortcutRequest.MeasureSince(started, operation)

	found, err := c.do(ctx, http.MethodGet, path, params, out)
	if err != nil {
		metricskey.StatsShortcutRequestsFailed.IncrCounter(1, operation)
		logger.ContextKV(ctx, xlog.ERROR,
			"operation", operation,
			"path", path,
			"err", err.Error(),
		)
		return false, err
	}
	return found, nil
}

func (c *RESTClient) do(ctx context.Context, method, path string, params url.Values, out any) (bool, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return false, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(tokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrapf(err, "failed to call %s %s", method, path)
	}
	defer resp.Body.Close()

	logger.ContextKV(ctx, xlog.DEBUG,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
	)

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return false, errors.Newf("%s %s returned %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			// empty body is treated as an absent record
			return true, nil
		}
		return false, errors.Wrapf(err, "failed to decode response from %s", path)
	}
	return true, nil
}

func (w *iterationWire) toIteration() *Iteration {
	it := &Iteration{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		Status:      toIterationStatus(w.Status),
		AppURL:      w.AppURL,
	}
	if len(w.GroupIDs) > 0 {
		it.Team = &Ref{ID: w.GroupIDs[0]}
	}
	return it
}

func (w *storyWire) toStory() *Story {
	s := &Story{
		ID:        w.ID,
		Name:      w.Name,
		StoryType: w.StoryType,
		Started:   w.Started,
		Completed: w.Completed,
		OwnerIDs:  w.OwnerIDs,
		AppURL:    w.AppURL,
	}
	if w.GroupID != nil && *w.GroupID != "" {
		s.Team = &Ref{ID: *w.GroupID}
	}
	if w.EpicID != nil {
		s.Epic = &Ref{ID: strconv.FormatInt(*w.EpicID, 10)}
	}
	if w.IterationID != nil {
		s.Iteration = &Ref{ID: strconv.FormatInt(*w.IterationID, 10)}
	}
	return s
}

func toIterationStatus(status string) IterationStatus {
	if status == wireStatusDone {
		return IterationStatusCompleted
	}
	return IterationStatus(status)
}
