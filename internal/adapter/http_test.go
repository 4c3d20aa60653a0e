package adapter

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinitab/uplink/internal/config"
	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/models"
)

// capturedCall records one form-encoded operation as seen by the test server.
type capturedCall struct {
	operation string
	form      map[string]string
}

// newTestAdapter starts an httptest server answering every operation with
// the given handler and returns an adapter pointed at it plus the list of
// captured calls.
func newTestAdapter(t *testing.T, handler func(form map[string]string) (status int, body string)) (ServerAdapter, *[]capturedCall) {
	t.Helper()

	calls := &[]capturedCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form := map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		*calls = append(*calls, capturedCall{operation: form[fieldOperation], form: form})

		status, body := handler(form)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		ServerURL:      srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a, calls
}

func okReply(extra string) string {
	if extra == "" {
		return `{"success": true}`
	}
	return `{"success": true, ` + extra + `}`
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url kept", raw: "https://camcops.example.org/api", want: "https://camcops.example.org/api"},
		{name: "scheme added", raw: "camcops.example.org", want: "https://camcops.example.org"},
		{name: "trailing slash trimmed", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "empty rejected", raw: "   ", wantErr: true},
		{name: "scheme only rejected", raw: "https://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestCall_CredentialsSentAndCleared(t *testing.T) {
	a, calls := newTestAdapter(t, func(map[string]string) (int, string) {
		return http.StatusOK, okReply("")
	})

	a.SetCredentials("device-1", "nurse", "tok")
	require.NoError(t, a.StartUpload(context.Background()))

	a.ClearCredentials()
	require.NoError(t, a.StartUpload(context.Background()))

	require.Len(t, *calls, 2)
	first, second := (*calls)[0].form, (*calls)[1].form
	assert.Equal(t, models.OpStartUpload, first[fieldOperation])
	assert.Equal(t, "device-1", first[fieldDevice])
	assert.Equal(t, "nurse", first[fieldUser])
	assert.Equal(t, "tok", first[fieldSessionToken])

	_, hasDevice := second[fieldDevice]
	_, hasUser := second[fieldUser]
	_, hasToken := second[fieldSessionToken]
	assert.False(t, hasDevice)
	assert.False(t, hasUser)
	assert.False(t, hasToken)
}

func TestCall_ServerReportedFailure(t *testing.T) {
	a, _ := newTestAdapter(t, func(map[string]string) (int, string) {
		return http.StatusOK, `{"success": false, "error": "no such device"}`
	})

	err := a.CheckDeviceRegistered(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerReported)
	assert.Contains(t, err.Error(), "no such device")
}

func TestCall_MissingSuccessFlagIsFailure(t *testing.T) {
	a, _ := newTestAdapter(t, func(map[string]string) (int, string) {
		return http.StatusOK, `{"result": "ok-looking"}`
	})

	assert.ErrorIs(t, a.CheckUploadUser(context.Background()), ErrServerReported)
}

func TestCall_HTTPErrorsMapped(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "conflict", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAdapter(t, func(map[string]string) (int, string) {
				return tt.status, "boom"
			})
			assert.ErrorIs(t, a.EndUpload(context.Background()), tt.wantErr)
		})
	}
}

func TestGetIDInfo_DecodesIdentity(t *testing.T) {
	a, _ := newTestAdapter(t, func(form map[string]string) (int, string) {
		return http.StatusOK, okReply(`
			"databaseTitle": "Ward 12",
			"serverCamcopsVersion": "2.4.0",
			"idPolicyUpload": "forename AND surname",
			"idPolicyFinalize": "idnum1",
			"idDescription1": "NHS number",
			"idShortDescription1": "NHS",
			"idDescription3": "Study code",
			"idShortDescription3": "Study"`)
	})

	identity, err := a.GetIDInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ward 12", identity.DatabaseTitle)
	assert.Equal(t, "2.4.0", identity.ServerVersion)
	assert.Equal(t, "forename AND surname", identity.UploadPolicy)
	assert.Equal(t, "idnum1", identity.FinalizePolicy)
	assert.Equal(t, "NHS number", identity.IDSlots[0].Description)
	assert.Equal(t, "NHS", identity.IDSlots[0].ShortDescription)
	assert.Equal(t, models.IDSlotDescription{}, identity.IDSlots[1])
	assert.Equal(t, "Study code", identity.IDSlots[2].Description)
}

func TestRegisterDevice_SendsFriendlyName(t *testing.T) {
	a, calls := newTestAdapter(t, func(map[string]string) (int, string) {
		return http.StatusOK, okReply(`"databaseTitle": "Clinic"`)
	})

	identity, err := a.RegisterDevice(context.Background(), "Ward tablet 3")
	require.NoError(t, err)
	assert.Equal(t, "Clinic", identity.DatabaseTitle)

	require.Len(t, *calls, 1)
	assert.Equal(t, models.OpRegister, (*calls)[0].operation)
	assert.Equal(t, "Ward tablet 3", (*calls)[0].form[fieldDeviceName])
}

func TestGetExtraStrings(t *testing.T) {
	t.Run("decodes triples", func(t *testing.T) {
		a, _ := newTestAdapter(t, func(map[string]string) (int, string) {
			return http.StatusOK, okReply(`"records": [["phq9", "q1", "Little interest"], ["gad7", "q1", "Feeling nervous"]]`)
		})

		strs, err := a.GetExtraStrings(context.Background())
		require.NoError(t, err)
		require.Len(t, strs, 2)
		assert.Equal(t, models.ExtraString{Task: "phq9", Name: "q1", Value: "Little interest"}, strs[0])
		assert.Equal(t, "gad7", strs[1].Task)
	})

	t.Run("malformed triple rejected", func(t *testing.T) {
		a, _ := newTestAdapter(t, func(map[string]string) (int, string) {
			return http.StatusOK, okReply(`"records": [["phq9", "q1"]]`)
		})

		_, err := a.GetExtraStrings(context.Background())
		assert.Error(t, err)
	})
}

func TestUploadEmptyTables_JoinsNames(t *testing.T) {
	a, calls := newTestAdapter(t, func(map[string]string) (int, string) {
		return http.StatusOK, okReply("")
	})

	require.NoError(t, a.UploadEmptyTables(context.Background(), []string{"gad7", "storedvars"}))
	require.Len(t, *calls, 1)
	assert.Equal(t, models.OpUploadEmptyTables, (*calls)[0].operation)
	assert.Equal(t, "gad7,storedvars", (*calls)[0].form[fieldTables])
}

func TestUploadTable_EncodesRows(t *testing.T) {
	a, calls := newTestAdapter(t, func(map[string]string) (int, string) {
		return http.StatusOK, okReply("")
	})

	rows := []models.Row{
		{PK: 1, Values: []string{"1", "alpha"}},
		{PK: 2, Values: []string{"2", "beta"}},
	}
	require.NoError(t, a.UploadTable(context.Background(), "phq9", []string{"id", "name"}, rows))

	require.Len(t, *calls, 1)
	form := (*calls)[0].form
	assert.Equal(t, "phq9", form[fieldTable])
	assert.Equal(t, "id,name", form[fieldFields])
	assert.Equal(t, "2", form[fieldNRecords])
	assert.JSONEq(t, `[["1","alpha"],["2","beta"]]`, form[fieldRecords])
}

func TestUploadRecord_Blob(t *testing.T) {
	a, calls := newTestAdapter(t, func(map[string]string) (int, string) {
		return http.StatusOK, okReply("")
	})

	blob := []byte{0x00, 0x01, 0xFF}
	row := models.Row{PK: 7, Values: []string{"7", "photo.png"}, Blob: blob}
	require.NoError(t, a.UploadRecord(context.Background(), models.BlobTable, []string{"id", "filename"}, row))

	require.Len(t, *calls, 1)
	form := (*calls)[0].form
	assert.Equal(t, models.BlobTable, form[fieldTable])
	assert.JSONEq(t, `["7","photo.png"]`, form[fieldValues])
	assert.Equal(t, base64.StdEncoding.EncodeToString(blob), form[fieldBlob])
}

func TestUploadRecord_NoBlobOmitsField(t *testing.T) {
	a, calls := newTestAdapter(t, func(map[string]string) (int, string) {
		return http.StatusOK, okReply("")
	})

	row := models.Row{PK: 7, Values: []string{"7"}}
	require.NoError(t, a.UploadRecord(context.Background(), "phq9", []string{"id"}, row))

	_, hasBlob := (*calls)[0].form[fieldBlob]
	assert.False(t, hasBlob)
}

func TestDeleteWhereKeyNot(t *testing.T) {
	a, calls := newTestAdapter(t, func(map[string]string) (int, string) {
		return http.StatusOK, okReply("")
	})

	require.NoError(t, a.DeleteWhereKeyNot(context.Background(), "phq9", []int64{3, 14, 15}))
	assert.Equal(t, "3,14,15", (*calls)[0].form[fieldPKValues])
}

func TestWhichKeysToSend(t *testing.T) {
	when := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	keys := []models.KeyTimestamp{
		{PK: 1, UpdatedAt: when},
		{PK: 2, UpdatedAt: when.Add(time.Minute)},
	}

	t.Run("subset returned", func(t *testing.T) {
		a, calls := newTestAdapter(t, func(map[string]string) (int, string) {
			return http.StatusOK, okReply(`"result": "2"`)
		})

		needed, err := a.WhichKeysToSend(context.Background(), models.BlobTable, keys)
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, needed)

		form := (*calls)[0].form
		assert.Equal(t, "1,2", form[fieldPKValues])
		assert.Equal(t, "2026-08-20T09:30:00Z,2026-08-20T09:31:00Z", form[fieldDateValues])
	})

	t.Run("empty result means nothing wanted", func(t *testing.T) {
		a, _ := newTestAdapter(t, func(map[string]string) (int, string) {
			return http.StatusOK, okReply(`"result": ""`)
		})

		needed, err := a.WhichKeysToSend(context.Background(), models.BlobTable, keys)
		require.NoError(t, err)
		assert.Nil(t, needed)
	})

	t.Run("absent result means nothing wanted", func(t *testing.T) {
		a, _ := newTestAdapter(t, func(map[string]string) (int, string) {
			return http.StatusOK, okReply("")
		})

		needed, err := a.WhichKeysToSend(context.Background(), models.BlobTable, keys)
		require.NoError(t, err)
		assert.Nil(t, needed)
	})

	t.Run("malformed key rejected", func(t *testing.T) {
		a, _ := newTestAdapter(t, func(map[string]string) (int, string) {
			return http.StatusOK, okReply(`"result": "2,bogus"`)
		})

		_, err := a.WhichKeysToSend(context.Background(), models.BlobTable, keys)
		assert.Error(t, err)
	})
}
