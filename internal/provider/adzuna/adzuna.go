// Package adzuna implements the legacy per-skill job-search backend. Each
// Search call carries a single query term; fanning out over terms is the
// dispatcher's job.
package adzuna

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

	"go.uber.org/zap"
)

const (
	apiURL         = "https://api.adzuna.com/v1/api"
	defaultCountry = "in"
	defaultPerPage = 10
	sortBy         = "relevance"
	contentType    = "application/json"
)

type Client struct {
	appID  string
	appKey string
	logger *zap.Logger

	HTTPClient *http.Client
	APIURL     string
	Country    string
	PerPage    int
}

func New(logger *zap.Logger, appID, appKey string) *Client {
	return &Client{
		appID:  appID,
		appKey: appKey,
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIURL:  apiURL,
		Country: defaultCountry,
		PerPage: defaultPerPage,
	}
}

func (c *Client) Name() string { return "adzuna" }

// searchResponse is the provider's envelope: results plus the total count.
type searchResponse struct {
	Results []*payload `json:"results"`
	Count   int        `json:"count"`
}

// payload mirrors the provider's result shape with its nested company,
// location and category objects.
type payload struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Category struct {
		Label string `json:"label"`
	} `json:"category"`

	Description  string   `json:"description"`
	RedirectURL  string   `json:"redirect_url"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
	ContractType string   `json:"contract_type"`
	Created      string   `json:"created"`
}

func (c *Client) Search(ctx context.Context, q provider.Query) (*provider.Response, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = c.PerPage
	}

	searchURL := fmt.Sprintf("%s/jobs/%s/search/%d", c.APIURL, c.Country, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("results_per_page", strconv.Itoa(perPage))
	params.Set("what", strings.Join(q.Terms, " "))
	params.Set("content-type", contentType)
	params.Set("sort_by", sortBy)
	req.URL.RawQuery = params.Encode()

	c.logger.Debug("make request", zap.String("url", req.URL.Redacted()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	jobs := make([]*jobsearch.Job, 0, len(body.Results))
	for _, raw := range body.Results {
		job, err := normalize(raw)
		if err != nil {
			c.logger.Debug("dropping malformed result", zap.Error(err))
			continue
		}
		jobs = append(jobs, job)
	}

	return &provider.Response{Jobs: jobs, Count: body.Count}, nil
}

// normalize maps the provider payload onto the canonical record. A result
// without a title is malformed and dropped.
func normalize(raw *payload) (*jobsearch.Job, error) {
	if raw == nil || strings.TrimSpace(raw.Title) == "" {
		return nil, fmt.Errorf("result has no title")
	}

	job := &jobsearch.Job{
		ID:           raw.ID,
		Title:        raw.Title,
		CompanyName:  raw.Company.DisplayName,
		Location:     raw.Location.DisplayName,
		Description:  raw.Description,
		ApplyLink:    raw.RedirectURL,
		Category:     raw.Category.Label,
		ContractType: raw.ContractType,
		CreatedAt:    jobsearch.ParseCreated(raw.Created),
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
