package provider

import (
	"context"
	"log"
	"net/http"
	"net/url"
)

const maxPhotos = 3

// unsplashResponse espelha o subconjunto usado da busca de fotos do Unsplash.
type unsplashResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// Unsplash busca até 3 fotos de paisagem para um destino.
type Unsplash struct {
	AccessKey string
	BaseURL   string
	client    *http.Client
}

func NewUnsplash(accessKey string) *Unsplash {
	return &Unsplash{
		AccessKey: accessKey,
		BaseURL:   "https://api.unsplash.com",
		client:    newHTTPClient(),
	}
}

// Fetch devolve as URLs das fotos, ou vazio. Sem credencial nenhuma chamada é
// feita.
func (p *Unsplash) Fetch(ctx context.Context, destino string) []string {
	if p.AccessKey == "" || destino == "" {
		return nil
	}

	params := url.Values{}
	params.Set("query", destino)
	params.Set("per_page", "3")
	params.Set("orientation", "landscape")

	header := http.Header{}
	header.Set("Accept-Version", "v1")
	header.Set("Authorization", "Client-ID "+p.AccessKey)

	var data unsplashResponse
	if err := getJSON(ctx, p.client, p.BaseURL+"/search/photos?"+params.Encode(), header, &data); err != nil {
		log.Printf("Unsplash indisponível para %q: %v", destino, err)
		return nil
	}

	var urls []string
	for _, item := range data.Results {
		if item.URLs.Regular == "" {
			continue
		}
		urls = append(urls, item.URLs.Regular)
		if len(urls) == maxPhotos {
			break
		}
	}
	return urls
}
