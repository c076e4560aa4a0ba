package jhu

import (
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix = "jhu"
)

var (
	ErrFetchData         = fmt.Errorf("fetch dataset fail")
	ErrEmptyDataset      = fmt.Errorf("empty data-set")
	ErrSchemaMismatch    = fmt.Errorf("unexpected dataset schema")
	ErrInvalidValue      = fmt.Errorf("invalid metric value")
	ErrInvalidPopulation = fmt.Errorf("invalid population value")
	ErrDuplicateRegion   = fmt.Errorf("duplicate region in lookup")
)

// Client - fetch the upstream case/death time series, the population
// lookup table and the world boundary file. Every fetch is one
// synchronous GET; any failure aborts the whole report run.
type Client struct {
	httpClient    *http.Client
	casesURL      string
	deathsURL     string
	populationURL string
	boundaryURL   string
}

// NewClient - new data source client
func NewClient(httpClient *http.Client, casesURL, deathsURL, populationURL, boundaryURL string) *Client {
	return &Client{
		httpClient:    httpClient,
		casesURL:      casesURL,
		deathsURL:     deathsURL,
		populationURL: populationURL,
		boundaryURL:   boundaryURL,
	}
}

func (c *Client) get(url string) ([]byte, error) {
	resp, err := c.httpClient.Get(url)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("get dataset")
		return nil, fmt.Errorf("%w: %s", ErrFetchData, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "status": resp.StatusCode}).Error("get dataset")
		return nil, fmt.Errorf("%w: status %d from %s", ErrFetchData, resp.StatusCode, url)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("read dataset response")
		return nil, fmt.Errorf("%w: %s", ErrFetchData, err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	return data, nil
}
