package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/clinitab/uplink/internal/config"
	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/internal/utils"
	"github.com/clinitab/uplink/models"
)

// Request/reply field names shared with the server.
const (
	fieldOperation    = "operation"
	fieldDevice       = "device"
	fieldUser         = "user"
	fieldSessionToken = "session_token"
	fieldTable        = "table"
	fieldFields       = "fields"
	fieldRecords      = "records"
	fieldNRecords     = "nrecords"
	fieldValues       = "values"
	fieldBlob         = "theblob"
	fieldTables       = "tables"
	fieldPKValues     = "pkvalues"
	fieldDateValues   = "datevalues"
	fieldDeviceName   = "devicefriendlyname"

	replySuccess = "success"
	replyError   = "error"
	replyResult  = "result"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	deviceID     string
	user         string
	sessionToken string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.ServerURL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetCredentials implements [ServerAdapter]. An already-expired session
// token is stored anyway (the server is the authority) but logged, since it
// usually means the clock or the credential setup is wrong.
func (h *httpServerAdapter) SetCredentials(deviceID, user, sessionToken string) {
	h.deviceID = strings.TrimSpace(deviceID)
	h.user = strings.TrimSpace(user)
	h.sessionToken = strings.TrimSpace(sessionToken)

	if utils.TokenExpired(h.sessionToken, time.Now()) {
		h.logger.Warn().Str("func", "httpServerAdapter.SetCredentials").
			Msg("session token is already expired")
	}
}

// ClearCredentials implements [ServerAdapter].
func (h *httpServerAdapter) ClearCredentials() {
	h.deviceID = ""
	h.user = ""
	h.sessionToken = ""
}

// call performs one operation round trip: form-encoded request fields out,
// JSON key/value reply back. Application-level failure (success flag unset)
// is mapped to ErrServerReported with the server's message.
func (h *httpServerAdapter) call(ctx context.Context, operation string, fields map[string]string) (reply, error) {
	form := map[string]string{
		fieldOperation: operation,
	}
	if h.deviceID != "" {
		form[fieldDevice] = h.deviceID
	}
	if h.user != "" {
		form[fieldUser] = h.user
	}
	if h.sessionToken != "" {
		form[fieldSessionToken] = h.sessionToken
	}
	for k, v := range fields {
		form[k] = v
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(form).
		Post("")
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", operation, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	var rep reply
	if err := json.Unmarshal(resp.Body(), &rep); err != nil {
		return nil, fmt.Errorf("%s decode reply: %w", operation, err)
	}

	if !rep.ok() {
		return nil, fmt.Errorf("%s: %w: %s", operation, ErrServerReported, rep.str(replyError))
	}

	return rep, nil
}

// reply is one decoded key/value server response.
type reply map[string]any

// ok reports the reply's success flag; a missing flag counts as failure so a
// malformed response never passes as success.
func (r reply) ok() bool {
	switch v := r[replySuccess].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v == "1" || v == "true"
	default:
		return false
	}
}

// str returns the named reply field as a string, defaulting to "" when
// absent so downstream string operations are always safe.
func (r reply) str(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// JSON numbers for textual fields still come back as text
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (h *httpServerAdapter) CheckDeviceRegistered(ctx context.Context) error {
	_, err := h.call(ctx, models.OpCheckDeviceRegistered, nil)
	return err
}

func (h *httpServerAdapter) CheckUploadUser(ctx context.Context) error {
	_, err := h.call(ctx, models.OpCheckUploadUser, nil)
	return err
}

func (h *httpServerAdapter) GetIDInfo(ctx context.Context) (models.ServerIdentity, error) {
	rep, err := h.call(ctx, models.OpGetIDInfo, nil)
	if err != nil {
		return models.ServerIdentity{}, err
	}
	return decodeIdentity(rep), nil
}

func (h *httpServerAdapter) RegisterDevice(ctx context.Context, deviceName string) (models.ServerIdentity, error) {
	rep, err := h.call(ctx, models.OpRegister, map[string]string{
		fieldDeviceName: deviceName,
	})
	if err != nil {
		return models.ServerIdentity{}, err
	}
	return decodeIdentity(rep), nil
}

// decodeIdentity maps a get_id_info/register reply onto a [models.ServerIdentity].
// Identifier slot fields are 1-based on the wire: idDescription1..N.
func decodeIdentity(rep reply) models.ServerIdentity {
	identity := models.ServerIdentity{
		DatabaseTitle:  rep.str("databaseTitle"),
		ServerVersion:  rep.str("serverCamcopsVersion"),
		UploadPolicy:   rep.str("idPolicyUpload"),
		FinalizePolicy: rep.str("idPolicyFinalize"),
	}
	for i := range identity.IDSlots {
		n := strconv.Itoa(i + 1)
		identity.IDSlots[i] = models.IDSlotDescription{
			Description:      rep.str("idDescription" + n),
			ShortDescription: rep.str("idShortDescription" + n),
		}
	}
	return identity
}

func (h *httpServerAdapter) GetExtraStrings(ctx context.Context) ([]models.ExtraString, error) {
	rep, err := h.call(ctx, models.OpGetExtraStrings, nil)
	if err != nil {
		return nil, err
	}

	raw, ok := rep[fieldRecords].([]any)
	if !ok {
		return nil, fmt.Errorf("%s: malformed records field", models.OpGetExtraStrings)
	}

	strs := make([]models.ExtraString, 0, len(raw))
	for _, entry := range raw {
		triple, ok := entry.([]any)
		if !ok || len(triple) != 3 {
			return nil, fmt.Errorf("%s: malformed string triple", models.OpGetExtraStrings)
		}
		s := models.ExtraString{}
		if s.Task, ok = triple[0].(string); !ok {
			return nil, fmt.Errorf("%s: malformed string triple", models.OpGetExtraStrings)
		}
		if s.Name, ok = triple[1].(string); !ok {
			return nil, fmt.Errorf("%s: malformed string triple", models.OpGetExtraStrings)
		}
		if s.Value, ok = triple[2].(string); !ok {
			return nil, fmt.Errorf("%s: malformed string triple", models.OpGetExtraStrings)
		}
		strs = append(strs, s)
	}
	return strs, nil
}

func (h *httpServerAdapter) StartUpload(ctx context.Context) error {
	_, err := h.call(ctx, models.OpStartUpload, nil)
	return err
}

func (h *httpServerAdapter) StartPreservation(ctx context.Context) error {
	_, err := h.call(ctx, models.OpStartPreservation, nil)
	return err
}

func (h *httpServerAdapter) UploadEmptyTables(ctx context.Context, tables []string) error {
	_, err := h.call(ctx, models.OpUploadEmptyTables, map[string]string{
		fieldTables: strings.Join(tables, ","),
	})
	return err
}

func (h *httpServerAdapter) UploadTable(ctx context.Context, table string, fields []string, rows []models.Row) error {
	values := make([][]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.Values)
	}
	payload, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("%s encode rows: %w", models.OpUploadTable, err)
	}

	_, err = h.call(ctx, models.OpUploadTable, map[string]string{
		fieldTable:    table,
		fieldFields:   strings.Join(fields, ","),
		fieldNRecords: strconv.Itoa(len(rows)),
		fieldRecords:  string(payload),
	})
	return err
}

func (h *httpServerAdapter) UploadRecord(ctx context.Context, table string, fields []string, row models.Row) error {
	payload, err := json.Marshal(row.Values)
	if err != nil {
		return fmt.Errorf("%s encode row: %w", models.OpUploadRecord, err)
	}

	form := map[string]string{
		fieldTable:  table,
		fieldFields: strings.Join(fields, ","),
		fieldValues: string(payload),
	}
	if row.Blob != nil {
		form[fieldBlob] = base64.StdEncoding.EncodeToString(row.Blob)
	}

	_, err = h.call(ctx, models.OpUploadRecord, form)
	return err
}

func (h *httpServerAdapter) DeleteWhereKeyNot(ctx context.Context, table string, keys []int64) error {
	_, err := h.call(ctx, models.OpDeleteWhereKeyNot, map[string]string{
		fieldTable:    table,
		fieldPKValues: joinInt64(keys),
	})
	return err
}

func (h *httpServerAdapter) WhichKeysToSend(ctx context.Context, table string, keys []models.KeyTimestamp) ([]int64, error) {
	pks := make([]string, 0, len(keys))
	dates := make([]string, 0, len(keys))
	for _, kt := range keys {
		pks = append(pks, strconv.FormatInt(kt.PK, 10))
		dates = append(dates, kt.UpdatedAt.UTC().Format(time.RFC3339Nano))
	}

	rep, err := h.call(ctx, models.OpWhichKeysToSend, map[string]string{
		fieldTable:      table,
		fieldPKValues:   strings.Join(pks, ","),
		fieldDateValues: strings.Join(dates, ","),
	})
	if err != nil {
		return nil, err
	}

	// absent/empty result means the server needs nothing
	result := strings.TrimSpace(rep.str(replyResult))
	if result == "" {
		return nil, nil
	}

	parts := strings.Split(result, ",")
	needed := make([]int64, 0, len(parts))
	for _, part := range parts {
		pk, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: malformed key %q in reply", models.OpWhichKeysToSend, part)
		}
		needed = append(needed, pk)
	}
	return needed, nil
}

func (h *httpServerAdapter) EndUpload(ctx context.Context) error {
	_, err := h.call(ctx, models.OpEndUpload, nil)
	return err
}

func joinInt64(keys []int64) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strconv.FormatInt(k, 10))
	}
	return strings.Join(parts, ",")
}
