package acquire

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sucheet2000/medical-desert-california/internal/config"
	"github.com/sucheet2000/medical-desert-california/internal/fetcher"
	"github.com/sucheet2000/medical-desert-california/internal/model"
)

// NPPESSample pulls a single page of providers from the NPPES lookup API and
// flattens each record to one CSV row. This is a best-effort sample, not the
// registry: the API caps page size, and only the first page is taken.
// Callers must not assume completeness.
type NPPESSample struct {
	cfg *config.Config
}

// Name implements Source.
func (s *NPPESSample) Name() string { return "nppes" }

// Description implements Source.
func (s *NPPESSample) Description() string { return "NPPES provider location sample (single API page)" }

// npiResponse mirrors the NPI registry API envelope.
type npiResponse struct {
	ResultCount int         `json:"result_count"`
	Results     []npiResult `json:"results"`
}

type npiResult struct {
	Number     int64         `json:"number"`
	Basic      npiBasic      `json:"basic"`
	Taxonomies []npiTaxonomy `json:"taxonomies"`
	Addresses  []npiAddress  `json:"addresses"`
}

type npiBasic struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	OrganizationName string `json:"organization_name"`
}

type npiTaxonomy struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
}

type npiAddress struct {
	AddressPurpose string `json:"address_purpose"`
	Address1       string `json:"address_1"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postal_code"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
}

// Fetch implements Source.
func (s *NPPESSample) Fetch(ctx context.Context, f fetcher.Fetcher, rawDir string) (*Result, error) {
	log := zap.L().With(zap.String("source", s.Name()))

	apiURL, err := s.queryURL()
	if err != nil {
		return &Result{Source: s.Name()}, err
	}

	log.Info("querying NPI registry", zap.String("url", apiURL))
	body, err := f.Download(ctx, apiURL)
	if err != nil {
		return &Result{Source: s.Name(), URL: apiURL}, eris.Wrap(err, "nppes: query api")
	}
	defer body.Close() //nolint:errcheck

	resp, err := fetcher.DecodeJSONObject[npiResponse](body)
	if err != nil {
		return &Result{Source: s.Name(), URL: apiURL}, eris.Wrap(err, "nppes: decode response")
	}
	if len(resp.Results) == 0 {
		return &Result{Source: s.Name(), URL: apiURL}, eris.New("nppes: api returned no results")
	}

	providers := make([]model.Provider, 0, len(resp.Results))
	for _, r := range resp.Results {
		providers = append(providers, flattenProvider(r))
	}

	data, err := csvutil.Marshal(providers)
	if err != nil {
		return &Result{Source: s.Name(), URL: apiURL}, eris.Wrap(err, "nppes: encode providers")
	}

	path := filepath.Join(rawDir, s.cfg.Data.ProviderFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &Result{Source: s.Name(), URL: apiURL}, eris.Wrap(err, "nppes: write sample")
	}

	log.Info("provider sample written",
		zap.String("path", path),
		zap.Int("providers", len(providers)),
	)
	return &Result{
		Source:  s.Name(),
		URL:     apiURL,
		Path:    path,
		Bytes:   int64(len(data)),
		Records: int64(len(providers)),
	}, nil
}

func (s *NPPESSample) queryURL() (string, error) {
	base, err := url.Parse(s.cfg.Sources.NPPESAPIURL)
	if err != nil {
		return "", eris.Wrap(err, "nppes: parse api url")
	}
	q := base.Query()
	q.Set("version", "2.1")
	q.Set("state", s.cfg.Sources.NPPESState)
	q.Set("taxonomy_description", s.cfg.Sources.NPPESTaxonomy)
	q.Set("limit", fmt.Sprintf("%d", s.cfg.Sources.NPPESPageSize))
	base.RawQuery = q.Encode()
	return base.String(), nil
}

// flattenProvider reduces one API record to a flat row: individual name or
// organization, first taxonomy, and the LOCATION-purpose address.
func flattenProvider(r npiResult) model.Provider {
	p := model.Provider{
		NPI:          fmt.Sprintf("%d", r.Number),
		Name:         strings.TrimSpace(r.Basic.FirstName + " " + r.Basic.LastName),
		Organization: r.Basic.OrganizationName,
	}

	if len(r.Taxonomies) > 0 {
		p.TaxonomyCode = r.Taxonomies[0].Code
		p.TaxonomyDesc = r.Taxonomies[0].Desc
	}

	for _, addr := range r.Addresses {
		if addr.AddressPurpose != "LOCATION" {
			continue
		}
		p.Address = addr.Address1
		p.City = addr.City
		p.State = addr.State
		p.PostalCode = addr.PostalCode
		p.Latitude = addr.Latitude
		p.Longitude = addr.Longitude
		break
	}

	return p
}
