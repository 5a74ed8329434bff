package en_us

import (
	"github.com/lpgame/letterpool/data"

	"errors"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
)

var (
	ErrorHttpUnexpected = errors.New("unexpected http error")
)

const (
	baseUrl  = "https://www.thefreedictionary.com"
	language = "en-us"
)

type EnUs struct {
	cache      data.Dictionary
	httpClient *http.Client
}

func NewEnUs(dictionary data.Dictionary, httpClient *http.Client) *EnUs {
	return &EnUs{
		cache:      dictionary,
		httpClient: httpClient,
	}
}

func (d *EnUs) LemmaIsValid(lemma string) (result bool, err error) {
	// Exist On Cache?
	var exist bool
	result, exist = d.cache.Get(language, lemma)
	if exist {
		return result, nil
	}

	// Request To The Free Dictionary
	url := fmt.Sprintf("%v/%v", baseUrl, lemma)
	res, err := d.httpClient.Get(url)
	if err != nil {
		return
	}
	defer res.Body.Close()

	// an unknown word still answers 200 with a suggestion page, so the
	// status alone cannot tell a word from a miss
	if res.StatusCode != 200 && res.StatusCode != 404 {
		err = ErrorHttpUnexpected
		return
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return
	}

	result = doc.Find("#Definition section").Length() > 0
	d.cache.Set(language, lemma, result)
	return
}
