package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
)

const (
	defaultLensStorageURL = "https://api.grove.storage"
	lensTestnetChainID    = 37111
)

type LensConfig struct {
	URL     string
	ChainID int64
}

// LensProvider uploads immutable JSON resources to the Lens storage node.
type LensProvider struct {
	cfg    LensConfig
	client *http.Client
}

var _ ports.StorageProvider = (*LensProvider)(nil)

type lensResource struct {
	StorageKey string `json:"storage_key"`
	GatewayURL string `json:"gateway_url"`
	URI        string `json:"uri"`
}

func NewLensProvider(cfg LensConfig, client *http.Client) *LensProvider {
	if cfg.URL == "" {
		cfg.URL = defaultLensStorageURL
	}
	if cfg.ChainID == 0 {
		cfg.ChainID = lensTestnetChainID
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &LensProvider{cfg: cfg, client: client}
}

func (p *LensProvider) Name() string {
	return domain.StorageLens
}

func (p *LensProvider) UploadJSON(ctx context.Context, payload any) (domain.UploadResponse, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return domain.UploadResponse{}, fmt.Errorf("encode payload: %w", err)
	}

	endpoint, err := url.Parse(p.cfg.URL)
	if err != nil {
		return domain.UploadResponse{}, fmt.Errorf("parse lens storage url: %w", err)
	}
	query := endpoint.Query()
	query.Set("chain_id", strconv.FormatInt(p.cfg.ChainID, 10))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(data))
	if err != nil {
		return domain.UploadResponse{}, fmt.Errorf("create lens storage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var raw json.RawMessage
	if err := doJSON(p.client, req, p.Name(), &raw); err != nil {
		return domain.UploadResponse{}, err
	}

	resource, err := decodeLensResource(raw)
	if err != nil {
		return domain.UploadResponse{}, err
	}

	return domain.UploadResponse{URL: resource.GatewayURL, CID: resource.StorageKey}, nil
}

// decodeLensResource accepts both the single-object and the one-element array form.
func decodeLensResource(raw json.RawMessage) (lensResource, error) {
	trimmed := bytes.TrimSpace(raw)

	var resource lensResource
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var resources []lensResource
		if err := json.Unmarshal(trimmed, &resources); err != nil {
			return lensResource{}, fmt.Errorf("decode lens storage response: %w", err)
		}
		if len(resources) == 0 {
			return lensResource{}, errors.New("lens storage returned no resources")
		}
		resource = resources[0]
	} else if err := json.Unmarshal(trimmed, &resource); err != nil {
		return lensResource{}, fmt.Errorf("decode lens storage response: %w", err)
	}

	if resource.GatewayURL == "" {
		return lensResource{}, errors.New("lens storage response missing gateway url")
	}

	return resource, nil
}
