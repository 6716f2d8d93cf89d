package engine_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-age/internal/engine"
)

func TestImportBirthDate(t *testing.T) {
	tests := []struct {
		name    string
		vcard   string
		want    string
		wantErr bool
	}{
		{
			name:  "Dashed date",
			vcard: "BEGIN:VCARD\nVERSION:4.0\nFN:John Doe\nBDAY:2000-01-01\nEND:VCARD",
			want:  "2000-01-01",
		},
		{
			name:  "Basic date",
			vcard: "BEGIN:VCARD\nVERSION:3.0\nFN:Basic\nBDAY:19900615\nEND:VCARD",
			want:  "1990-06-15",
		},
		{
			name:  "Timestamp keeps the written day",
			vcard: "BEGIN:VCARD\nVERSION:3.0\nFN:Stamp\nBDAY:1985-03-04T23:30:00-05:00\nEND:VCARD",
			want:  "1985-03-04",
		},
		{
			name: "Year-less card skipped",
			vcard: "BEGIN:VCARD\nVERSION:4.0\nFN:No Year\nBDAY:--02-29\nEND:VCARD\n" +
				"BEGIN:VCARD\nVERSION:4.0\nFN:Full\nBDAY:2020-02-29\nEND:VCARD",
			want: "2020-02-29",
		},
		{
			name: "Card without birthday skipped",
			vcard: "BEGIN:VCARD\nVERSION:3.0\nFN:Nobody\nEND:VCARD\n" +
				"BEGIN:VCARD\nVERSION:3.0\nFN:Somebody\nBDAY:1970-12-31\nEND:VCARD",
			want: "1970-12-31",
		},
		{
			name:    "No usable birthday",
			vcard:   "BEGIN:VCARD\nVERSION:3.0\nFN:Nobody\nEND:VCARD",
			wantErr: true,
		},
		{
			name:    "Empty stream",
			vcard:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ImportBirthDate(context.Background(), strings.NewReader(tt.vcard))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// The imported value must be accepted by the date field as is.
			_, err = engine.ParseDate(got)
			assert.NoError(t, err)
		})
	}
}

func TestImportBirthDate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.ImportBirthDate(ctx, strings.NewReader("BEGIN:VCARD\nVERSION:3.0\nBDAY:2000-01-01\nEND:VCARD"))
	assert.ErrorIs(t, err, context.Canceled)
}
