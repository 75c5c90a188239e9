package utils

import (
	"log"
	"math"
	"os"
	"time"

	"github.com/parnurzeal/gorequest"
	"golang.org/x/xerrors"
)

// LookupEnv returns the value of the environment variable or the default
// when it is unset.
func LookupEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultValue
}

// FetchURL returns the HTTP response body with retry. Failed attempts back
// off quadratically before the next try.
func FetchURL(url string, headers map[string]string, timeout time.Duration, retry int) (res []byte, err error) {
	for i := 0; i <= retry; i++ {
		if i > 0 {
			wait := math.Pow(float64(i), 2)
			log.Printf("retry after %.0f seconds\n", wait)
			time.Sleep(time.Duration(wait) * time.Second)
		}
		res, err = fetchURL(url, headers, timeout)
		if err == nil {
			return res, nil
		}
	}
	return nil, xerrors.Errorf("failed to fetch URL: %w", err)
}

func fetchURL(url string, headers map[string]string, timeout time.Duration) ([]byte, error) {
	req := gorequest.New().Get(url).Timeout(timeout)
	for key, value := range headers {
		req.Header.Add(key, value)
	}
	resp, body, errs := req.Type("text").EndBytes()
	if len(errs) > 0 {
		return nil, xerrors.Errorf("HTTP error. url: %s, err: %w", url, errs[0])
	}
	if resp.StatusCode != 200 {
		return nil, xerrors.Errorf("HTTP error. status code: %d, url: %s", resp.StatusCode, url)
	}
	return body, nil
}
