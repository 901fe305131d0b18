// Package aggregator implements the batched job-search backend: one request
// carries every query term as a repeated parameter and the endpoint answers
// with a single merged result list.
package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Mahak-Sharma/Resume-to-job/internal/jobsearch"
	"github.com/Mahak-Sharma/Resume-to-job/internal/provider"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const defaultPerPage = 50

type Client struct {
	endpoint string
	logger   *zap.Logger

	HTTPClient *http.Client
	PerPage    int
}

func New(logger *zap.Logger, endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		logger:   logger,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		PerPage: defaultPerPage,
	}
}

func (c *Client) Name() string { return "aggregator" }

// envelope is the endpoint's response shape. Items stay loosely typed until
// mapstructure maps them onto the payload struct; the endpoint is known to
// vary optional fields per deployment.
type envelope struct {
	Jobs  []any `json:"jobs"`
	Count int   `json:"count"`
}

type payload struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	CompanyName  string   `json:"company_name"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	ApplyLink    string   `json:"apply_link"`
	Category     string   `json:"category"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
	ContractType string   `json:"contract_type"`

	// Millisecond epoch or ISO string, depending on the deployment.
	CreatedAt any `json:"created_at"`
}

func (c *Client) Search(ctx context.Context, q provider.Query) (*provider.Response, error) {
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = c.PerPage
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	for _, term := range q.Terms {
		params.Add("what", term)
	}
	params.Set("results_per_page", strconv.Itoa(perPage))
	if q.Page > 1 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	req.URL.RawQuery = params.Encode()

	c.logger.Debug("make request", zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	var payloads []*payload
	cfg := &mapstructure.DecoderConfig{
		Result:           &payloads,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(body.Jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}

	jobs := make([]*jobsearch.Job, 0, len(payloads))
	for _, raw := range payloads {
		job, err := normalize(raw)
		if err != nil {
			c.logger.Debug("dropping malformed result", zap.Error(err))
			continue
		}
		jobs = append(jobs, job)
	}

	return &provider.Response{Jobs: jobs, Count: body.Count}, nil
}

func normalize(raw *payload) (*jobsearch.Job, error) {
	if raw == nil || strings.TrimSpace(raw.Title) == "" {
		return nil, fmt.Errorf("result has no title")
	}

	job := &jobsearch.Job{
		ID:           raw.ID,
		Title:        raw.Title,
		CompanyName:  raw.CompanyName,
		Location:     raw.Location,
		Description:  raw.Description,
		ApplyLink:    raw.ApplyLink,
		Category:     raw.Category,
		ContractType: raw.ContractType,
		CreatedAt:    jobsearch.ParseCreated(raw.CreatedAt),
	}

	if raw.SalaryMin != nil {
		job.SalaryMin = *raw.SalaryMin
		job.HasSalaryMin = true
	}
	if raw.SalaryMax != nil {
		job.SalaryMax = *raw.SalaryMax
		job.HasSalaryMax = true
	}

	return job, nil
}
