package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront-api/internal/core/config"
	"storefront-api/internal/core/httpclient"
	"storefront-api/internal/core/logger"
	"storefront-api/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// maxErrorBody caps how much of a failed response is logged.
const maxErrorBody = 4 << 10

// bxStatuses maps Blue Express macro states to normalized statuses.
var bxStatuses = map[string]domain.TrackingStatus{
	"Entregado":  domain.TrackingStatusDelivered,
	"En Ruta":    domain.TrackingStatusInTransit,
	"En Reparto": domain.TrackingStatusOutForDelivery,
	"Fallido":    domain.TrackingStatusFailedDelivery,
	"Devuelto":   domain.TrackingStatusReturned,
	"Creado":     domain.TrackingStatusCreated,
}

// BlueExpressAdapter tracks shipments through the Blue Express tracking API.
type BlueExpressAdapter struct {
	client *http.Client
	config config.BlueExpressConfig
}

// NewBlueExpressAdapter creates a new BlueExpressAdapter.
func NewBlueExpressAdapter(cfg config.BlueExpressConfig, timeout time.Duration) *BlueExpressAdapter {
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return &BlueExpressAdapter{
		client: httpclient.NewClient(timeout),
		config: cfg,
	}
}

// flexString decodes JSON strings and numbers alike.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

type bxResponse struct {
	Status bool    `json:"status"`
	Data   *bxData `json:"data"`
}

type bxData struct {
	NroOS                  string       `json:"nroOS"`
	FechaCreacion          string       `json:"fechaCreacion"`
	NombreTipoServicio     string       `json:"nombreTipoServicio"`
	PesoFisico             flexString   `json:"pesoFisico"`
	CantidadPiezas         flexString   `json:"cantidadPiezas"`
	MacroEstadoActual      string       `json:"macroEstadoActual"`
	FechaMacroEstadoActual string       `json:"fechaMacroEstadoActual"`
	DireccionOrigen        string       `json:"direccionOrigen"`
	LocalidadOrigen        string       `json:"localidadOrigen"`
	DireccionDestino       string       `json:"direccionDestino"`
	LocalidadDestino       string       `json:"localidadDestino"`
	Pinchazos              []bxPinchazo `json:"pinchazos"`
}

type bxPinchazo struct {
	TipoMovimiento *struct {
		Codigo      string `json:"codigo"`
		Descripcion string `json:"descripcion"`
	} `json:"tipoMovimiento"`
	FechaHora   string `json:"fechaHora"`
	Observacion string `json:"observacion"`
}

// Track retrieves the tracking record of trackingNumber.
func (a *BlueExpressAdapter) Track(ctx context.Context, trackingNumber string) (*domain.TrackingRecord, error) {
	if a.config.Token == "" || a.config.UserCode == "" || a.config.ClientAccount == "" {
		return nil, errors.New("missing Blue Express API configuration")
	}

	endpoint := a.config.URL + "/tracking-pull/" + url.PathEscape(trackingNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("BX-TOKEN", a.config.Token)
	req.Header.Set("BX-USERCODE", a.config.UserCode)
	req.Header.Set("BX-CLIENT-ACCOUNT", a.config.ClientAccount)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Get().Error("Blue Express returned an error",
			zap.String("tracking_number", trackingNumber),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(raw)),
		)
		return nil, fmt.Errorf("error tracking shipment: %s", http.StatusText(resp.StatusCode))
	}

	var body bxResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !body.Status || body.Data == nil {
		return nil, domain.ErrTrackingNotFound
	}

	return toRecord(body.Data), nil
}

func toRecord(d *bxData) *domain.TrackingRecord {
	status, ok := bxStatuses[d.MacroEstadoActual]
	if !ok {
		status = domain.TrackingStatusUnknown
	}

	events := make([]domain.TrackingEvent, 0, len(d.Pinchazos)+1)
	for _, p := range d.Pinchazos {
		event := domain.TrackingEvent{
			Date:     p.FechaHora,
			Status:   "UNKNOWN",
			Location: p.Observacion,
		}
		if p.TipoMovimiento != nil {
			if p.TipoMovimiento.Codigo != "" {
				event.Status = p.TipoMovimiento.Codigo
			}
			event.Description = p.TipoMovimiento.Descripcion
		}
		events = append(events, event)
	}
	if d.FechaCreacion != "" {
		events = append(events, domain.TrackingEvent{
			Date:        d.FechaCreacion,
			Status:      domain.EventStatusCreated,
			Description: "Orden Creada",
		})
	}
	domain.SortEventsNewestFirst(events)

	return &domain.TrackingRecord{
		TrackingNumber:     d.NroOS,
		Status:             status,
		StatusDescription:  d.MacroEstadoActual,
		Events:             events,
		LastUpdate:         d.FechaMacroEstadoActual,
		OriginAddress:      d.DireccionOrigen + ", " + d.LocalidadOrigen,
		DestinationAddress: d.DireccionDestino + ", " + d.LocalidadDestino,
		PackageInfo: domain.PackageInfo{
			Weight:  string(d.PesoFisico),
			Pieces:  string(d.CantidadPiezas),
			Service: d.NombreTipoServicio,
		},
	}
}
