package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"github.com/google/uuid"
)

const defaultPinataURL = "https://api.pinata.cloud"

var errMissingPinataJWT = errors.New("pinata jwt is required")

type PinataConfig struct {
	JWT     string
	URL     string
	Gateway string
}

type PinataProvider struct {
	cfg    PinataConfig
	client *http.Client
}

var _ ports.StorageProvider = (*PinataProvider)(nil)

type pinataRequest struct {
	Content  any            `json:"pinataContent"`
	Metadata pinataMetadata `json:"pinataMetadata"`
}

type pinataMetadata struct {
	Name string `json:"name"`
}

type pinataResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

func NewPinataProvider(cfg PinataConfig, client *http.Client) (*PinataProvider, error) {
	if cfg.JWT == "" {
		return nil, errMissingPinataJWT
	}
	if cfg.URL == "" {
		cfg.URL = defaultPinataURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &PinataProvider{cfg: cfg, client: client}, nil
}

func (p *PinataProvider) Name() string {
	return domain.StoragePinata
}

func (p *PinataProvider) UploadJSON(ctx context.Context, payload any) (domain.UploadResponse, error) {
	data, err := json.Marshal(pinataRequest{
		Content:  payload,
		Metadata: pinataMetadata{Name: "lensagent-" + uuid.NewString()},
	})
	if err != nil {
		return domain.UploadResponse{}, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(p.cfg.URL, "/pinning/pinJSONToIPFS"), bytes.NewReader(data))
	if err != nil {
		return domain.UploadResponse{}, fmt.Errorf("create pinata request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.cfg.JWT)

	var resp pinataResponse
	if err := doJSON(p.client, req, p.Name(), &resp); err != nil {
		return domain.UploadResponse{}, err
	}
	if resp.IpfsHash == "" {
		return domain.UploadResponse{}, errors.New("pinata response missing IpfsHash")
	}

	return domain.UploadResponse{URL: ipfsURL(p.cfg.Gateway, resp.IpfsHash), CID: resp.IpfsHash}, nil
}

func ipfsURL(gateway string, cid string) string {
	if gateway == "" {
		return "ipfs://" + cid
	}

	return joinURL(gateway, "/ipfs/"+cid)
}
