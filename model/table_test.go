package model_test

import (
	"encoding/json"
	"testing"

	"github.com/muhammadheryan/table-booking/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    model.TableID
		wantErr bool
	}{
		{name: "string id", body: `{"id":"1"}`, want: "1"},
		{name: "numeric id", body: `{"id":42}`, want: "42"},
		{name: "null id", body: `{"id":null}`, want: ""},
		{name: "missing id", body: `{}`, want: ""},
		{name: "bool id", body: `{"id":true}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req model.CreateTableRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.ID)
		})
	}
}

func TestTable_MarshalOmitsUnsetMinOrder(t *testing.T) {
	b, err := json.Marshal(model.NewTable(model.TableEntity{ID: "7", Number: 3, Places: 2}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7","number":3,"places":2,"isVip":false}`, string(b))
}
