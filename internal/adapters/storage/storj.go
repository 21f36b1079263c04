package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
)

const defaultStorjURL = "https://www.storj-ipfs.com"

type StorjConfig struct {
	Username string
	Password string
	URL      string
	Gateway  string
}

// StorjProvider pins JSON documents through Storj's IPFS-compatible add endpoint.
type StorjProvider struct {
	cfg    StorjConfig
	client *http.Client
}

var _ ports.StorageProvider = (*StorjProvider)(nil)

type storjAddResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

func NewStorjProvider(cfg StorjConfig, client *http.Client) (*StorjProvider, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("storj username and password are required")
	}
	if cfg.URL == "" {
		cfg.URL = defaultStorjURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &StorjProvider{cfg: cfg, client: client}, nil
}

func (p *StorjProvider) Name() string {
	return domain.StorageStorj
}

func (p *StorjProvider) UploadJSON(ctx context.Context, payload any) (domain.UploadResponse, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return domain.UploadResponse{}, fmt.Errorf("encode payload: %w", err)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "metadata.json")
	if err != nil {
		return domain.UploadResponse{}, fmt.Errorf("create storj form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return domain.UploadResponse{}, fmt.Errorf("write storj form: %w", err)
	}
	if err := form.Close(); err != nil {
		return domain.UploadResponse{}, fmt.Errorf("close storj form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(p.cfg.URL, "/api/v0/add"), &body)
	if err != nil {
		return domain.UploadResponse{}, fmt.Errorf("create storj request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.SetBasicAuth(p.cfg.Username, p.cfg.Password)

	var resp storjAddResponse
	if err := doJSON(p.client, req, p.Name(), &resp); err != nil {
		return domain.UploadResponse{}, err
	}
	if resp.Hash == "" {
		return domain.UploadResponse{}, errors.New("storj response missing hash")
	}

	return domain.UploadResponse{URL: ipfsURL(p.cfg.Gateway, resp.Hash), CID: resp.Hash}, nil
}
