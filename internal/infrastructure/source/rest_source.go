package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
	"github.com/jhoicas/Gemas-api/internal/domain/record"
)

// RESTSource es la fuente primaria: el endpoint REST remoto (PostgREST de
// Supabase o un peer de la API) que publica las facturas como JSON laxo.
type RESTSource struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ InvoiceSource = (*RESTSource)(nil)

// NewRESTSource construye la fuente. apiKey puede ser vacío (endpoint propio).
func NewRESTSource(baseURL, apiKey string, timeout time.Duration) *RESTSource {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &RESTSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Name identifica la fuente en los logs.
func (s *RESTSource) Name() string { return "rest-api" }

// Fetch trae y normaliza las facturas del endpoint remoto.
//
// El payload puede venir en dos formas históricas: el objeto del endpoint
// propio {"invoices": [...]} o el arreglo plano de filas crudas que devuelve
// una consulta directa al backing store. Se aceptan ambas.
func (s *RESTSource) Fetch(ctx context.Context) ([]entity.Invoice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/invoices", nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		// Convención Supabase: apikey + Bearer con el anon key.
		req.Header.Set("apikey", s.apiKey)
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch invoices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	raws, err := decodeInvoicePayload(resp.Body)
	if err != nil {
		return nil, err
	}
	return record.NormalizeAll(raws), nil
}

func decodeInvoicePayload(r io.Reader) ([]record.RawInvoice, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}

	var wrapped struct {
		Invoices []record.RawInvoice `json:"invoices"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Invoices != nil {
		return wrapped.Invoices, nil
	}

	var flat []record.RawInvoice
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("decodificar payload: %w", err)
	}
	return flat, nil
}
