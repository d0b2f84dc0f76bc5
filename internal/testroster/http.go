package testroster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTP status code constants.
const (
	statusOK       = 200
	statusAccepted = 202
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitJobs submits composition jobs concurrently using a worker pool
func submitJobs(ctx context.Context, config *Config, submissions []Submission, stats *Stats) error {
	log.Printf("📤 Submitting %d composition jobs with %d workers...", len(submissions), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/compositions"

	var (
		accepted  int64
		duplicate int64
		failed    int64
		submitted int64
	)

	jobChan := make(chan Submission, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for sub := range jobChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := submitSingleJob(ctx, client, url, sub)

					atomic.AddInt64(&submitted, 1)
					switch result {
					case "accepted":
						atomic.AddInt64(&accepted, 1)
					case "duplicate":
						atomic.AddInt64(&duplicate, 1)
					case "failed":
						atomic.AddInt64(&failed, 1)
					}
				}
			}
		}()
	}

	go func() {
		defer close(jobChan)
		for _, sub := range submissions {
			select {
			case <-ctx.Done():
				return
			case jobChan <- sub:
			}
		}
	}()

	wg.Wait()

	stats.JobsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.JobsAccepted = int(atomic.LoadInt64(&accepted))
	stats.JobsDuplicate = int(atomic.LoadInt64(&duplicate))
	stats.JobsFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Job submission completed:
   Accepted: %d
   Duplicate: %d
   Failed: %d
`, stats.JobsAccepted, stats.JobsDuplicate, stats.JobsFailed)

	return nil
}

// submitSingleJob submits a single composition job and returns the result
func submitSingleJob(ctx context.Context, client *HTTPClient, url string, sub Submission) string {
	resp, err := client.Post(ctx, url, sub)
	if err != nil {
		return "failed"
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return "failed"
	}

	switch resp.StatusCode {
	case statusAccepted:
		var ack AckResponse
		if err := json.Unmarshal(body, &ack); err == nil && ack.Status == "accepted" {
			return "accepted"
		}
		return "accepted"
	case statusOK:
		return "duplicate"
	default:
		return "failed"
	}
}

// retrieveResults polls for completed composition results.
func retrieveResults(ctx context.Context, config *Config, submissions []Submission, stats *Stats) ([]Result, error) {
	log.Printf("🔎 Retrieving %d composition results with %d workers...", len(submissions), config.Workers)

	client := newHTTPClient(config.Timeout)

	results := make([]Result, len(submissions))
	found := make([]bool, len(submissions))
	var retrieved int64

	indexChan := make(chan int, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for index := range indexChan {
				select {
				case <-ctx.Done():
					return
				default:
					result, err := retrieveSingleResult(ctx, client, config.BaseURL, submissions[index].RequestID)
					if err != nil {
						if config.Verbose {
							log.Printf("⚠️  Failed to get result for %s: %v", submissions[index].RequestID, err)
						}
						continue
					}
					results[index] = result
					found[index] = true
					atomic.AddInt64(&retrieved, 1)
				}
			}
		}()
	}

	go func() {
		defer close(indexChan)
		for i := range submissions {
			select {
			case <-ctx.Done():
				return
			case indexChan <- i:
			}
		}
	}()

	wg.Wait()

	// Keep only results that were actually retrieved
	out := make([]Result, 0, len(results))
	for i, ok := range found {
		if ok {
			out = append(out, results[i])
		}
	}

	stats.ResultsRetrieved = int(atomic.LoadInt64(&retrieved))
	log.Printf("✅ Retrieved %d/%d results", stats.ResultsRetrieved, len(submissions))
	return out, nil
}

// retrieveSingleResult fetches one result by job id.
func retrieveSingleResult(ctx context.Context, client *HTTPClient, baseURL, jobID string) (Result, error) {
	resp, err := client.Get(ctx, baseURL+"/compositions/"+jobID)
	if err != nil {
		return Result{}, fmt.Errorf("request failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return Result{}, fmt.Errorf("read body failed: %w", err)
	}

	if resp.StatusCode != statusOK {
		return Result{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return Result{}, fmt.Errorf("unmarshal failed: %w", err)
	}
	return result, nil
}
