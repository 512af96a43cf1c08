package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/streambinder/yturl/util"
	"github.com/tidwall/gjson"
)

const (
	searchURL   = "https://www.youtube.com/results"
	userAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	resultsPath = "contents.twoColumnSearchResultsRenderer.primaryContents.sectionListRenderer.contents"
)

type youTube struct {
	Provider
}

func init() {
	providers = append(providers, youTube{})
}

func (provider youTube) search(query string) ([]*Result, error) {
	response, err := util.HttpRequest(context.Background(), http.MethodGet, searchURL,
		url.Values{"search_query": {query}}, nil, "User-Agent:"+userAgent)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != 200 {
		return nil, errors.New("cannot fetch results on youtube: " + response.Status)
	}

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return nil, err
	}

	documentHTML, _ := document.Html()
	if strings.Contains(strings.ToLower(documentHTML), "unusual traffic") {
		return nil, fmt.Errorf("%w: interstitial bot check received", ErrBadResponse)
	}

	resultJSON := strings.Join(document.Find("script").Map(func(i int, selection *goquery.Selection) string {
		if !strings.HasPrefix(strings.TrimPrefix(selection.Text(), " "), "var ytInitialData =") {
			return ""
		}
		return strings.TrimSuffix(strings.TrimSpace(selection.Text()[19:]), ";")
	}), "")
	if resultJSON == "" {
		return nil, fmt.Errorf("%w: initial data script not found", ErrBadResponse)
	}

	sections := gjson.Get(resultJSON, resultsPath)
	if !sections.Exists() {
		return nil, fmt.Errorf("%w: unknown results layout", ErrBadResponse)
	}

	var results []*Result
	sections.ForEach(func(key, section gjson.Result) bool {
		section.Get("itemSectionRenderer.contents").ForEach(func(key, item gjson.Result) bool {
			// entries without a video identifier (channels, shelves, ads)
			// have nothing to extract and get skipped
			id := item.Get("videoRenderer.videoId").String()
			if id == "" {
				return true
			}

			results = append(results, &Result{
				ID:    id,
				Title: item.Get("videoRenderer.title.runs.0.text").String(),
				Owner: item.Get("videoRenderer.ownerText.runs.0.text").String(),
			})
			return true
		})
		return true
	})

	return results, nil
}
