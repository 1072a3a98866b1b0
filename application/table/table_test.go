package table_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	apptable "github.com/muhammadheryan/table-booking/application/table"
	"github.com/muhammadheryan/table-booking/cmd/config"
	"github.com/muhammadheryan/table-booking/constant"
	tablemocks "github.com/muhammadheryan/table-booking/mocks/repository/table"
	"github.com/muhammadheryan/table-booking/model"
	tablerepo "github.com/muhammadheryan/table-booking/repository/table"
	cerr "github.com/muhammadheryan/table-booking/utils/errors"
	"github.com/stretchr/testify/mock"
)

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

func assertCustomError(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestTableApp_CreateTable(t *testing.T) {
	type fields struct {
		config    *config.Config
		tableRepo *tablemocks.TableRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.CreateTableRequest
		mockCall func(f fields)
		want     *model.CreateTableResponse
		wantErr  bool
		errCode  constant.ErrorType
		errMsg   string
	}{
		{
			name: "success: put with min order",
			fields: fields{
				config:    &config.Config{},
				tableRepo: tablemocks.NewTableRepository(t),
			},
			req: &model.CreateTableRequest{ID: "14", Number: intPtr(5), Places: intPtr(4), IsVip: boolPtr(true), MinOrder: intPtr(100)},
			mockCall: func(f fields) {
				f.tableRepo.
					On("Put", mock.Anything, &model.TableEntity{ID: "14", Number: 5, Places: 4, IsVip: true, MinOrder: intPtr(100)}).
					Return(nil).
					Once()
			},
			want: &model.CreateTableResponse{ID: "14"},
		},
		{
			name: "success: unique ids use a conditional insert",
			fields: fields{
				config:    &config.Config{Storage: config.StorageConfig{TableIDUnique: true}},
				tableRepo: tablemocks.NewTableRepository(t),
			},
			req: &model.CreateTableRequest{ID: "7", Number: intPtr(1), Places: intPtr(2), IsVip: boolPtr(false)},
			mockCall: func(f fields) {
				f.tableRepo.
					On("Insert", mock.Anything, &model.TableEntity{ID: "7", Number: 1, Places: 2}).
					Return(nil).
					Once()
			},
			want: &model.CreateTableResponse{ID: "7"},
		},
		{
			name: "error: duplicate id when unique",
			fields: fields{
				config:    &config.Config{Storage: config.StorageConfig{TableIDUnique: true}},
				tableRepo: tablemocks.NewTableRepository(t),
			},
			req: &model.CreateTableRequest{ID: "7", Number: intPtr(1), Places: intPtr(2), IsVip: boolPtr(false)},
			mockCall: func(f fields) {
				f.tableRepo.
					On("Insert", mock.Anything, mock.Anything).
					Return(tablerepo.ErrAlreadyExists).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrTableExists,
		},
		{
			name: "error: missing number",
			fields: fields{
				config:    &config.Config{},
				tableRepo: tablemocks.NewTableRepository(t),
			},
			req:     &model.CreateTableRequest{ID: "1", Places: intPtr(2), IsVip: boolPtr(false)},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
			errMsg:  "Missing required field: number",
		},
		{
			name: "error: zero places",
			fields: fields{
				config:    &config.Config{},
				tableRepo: tablemocks.NewTableRepository(t),
			},
			req:     &model.CreateTableRequest{ID: "1", Number: intPtr(1), Places: intPtr(0), IsVip: boolPtr(false)},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
			errMsg:  "Invalid value for field: places",
		},
		{
			name: "error: negative min order",
			fields: fields{
				config:    &config.Config{},
				tableRepo: tablemocks.NewTableRepository(t),
			},
			req:     &model.CreateTableRequest{ID: "1", Number: intPtr(1), Places: intPtr(2), IsVip: boolPtr(false), MinOrder: intPtr(-1)},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: repository failure",
			fields: fields{
				config:    &config.Config{},
				tableRepo: tablemocks.NewTableRepository(t),
			},
			req: &model.CreateTableRequest{ID: "1", Number: intPtr(1), Places: intPtr(2), IsVip: boolPtr(false)},
			mockCall: func(f fields) {
				f.tableRepo.
					On("Put", mock.Anything, mock.Anything).
					Return(errors.New("throughput exceeded")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apptable.NewTableApp(tt.fields.config, tt.fields.tableRepo)

			got, err := app.CreateTable(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateTable() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
				if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Fatalf("error message = %q, want %q", err.Error(), tt.errMsg)
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CreateTable() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTableApp_ListTables(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(r *tablemocks.TableRepository)
		want     []model.Table
		wantErr  bool
	}{
		{
			name: "success: keeps storage order and omits unset min order",
			mockCall: func(r *tablemocks.TableRepository) {
				r.On("List", mock.Anything).
					Return([]model.TableEntity{
						{ID: "2", Number: 2, Places: 6, IsVip: true, MinOrder: intPtr(50)},
						{ID: "1", Number: 1, Places: 2},
					}, nil).
					Once()
			},
			want: []model.Table{
				{ID: "2", Number: 2, Places: 6, IsVip: true, MinOrder: intPtr(50)},
				{ID: "1", Number: 1, Places: 2},
			},
		},
		{
			name: "success: empty store returns empty list",
			mockCall: func(r *tablemocks.TableRepository) {
				r.On("List", mock.Anything).Return(nil, nil).Once()
			},
			want: []model.Table{},
		},
		{
			name: "error: scan fails",
			mockCall: func(r *tablemocks.TableRepository) {
				r.On("List", mock.Anything).Return(nil, errors.New("scan failed")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := tablemocks.NewTableRepository(t)
			tt.mockCall(repo)
			app := apptable.NewTableApp(&config.Config{}, repo)

			got, err := app.ListTables(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListTables() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertCustomError(t, err, constant.ErrInternal)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListTables() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTableApp_GetTableByID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		mockCall func(r *tablemocks.TableRepository)
		want     *model.Table
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: min order defaults to zero",
			id:   "3",
			mockCall: func(r *tablemocks.TableRepository) {
				r.On("GetByID", mock.Anything, "3").
					Return(&model.TableEntity{ID: "3", Number: 3, Places: 4}, nil).
					Once()
			},
			want: &model.Table{ID: "3", Number: 3, Places: 4, MinOrder: intPtr(0)},
		},
		{
			name: "success: stored min order is kept",
			id:   "4",
			mockCall: func(r *tablemocks.TableRepository) {
				r.On("GetByID", mock.Anything, "4").
					Return(&model.TableEntity{ID: "4", Number: 4, Places: 8, IsVip: true, MinOrder: intPtr(250)}, nil).
					Once()
			},
			want: &model.Table{ID: "4", Number: 4, Places: 8, IsVip: true, MinOrder: intPtr(250)},
		},
		{
			name: "error: not found",
			id:   "404",
			mockCall: func(r *tablemocks.TableRepository) {
				r.On("GetByID", mock.Anything, "404").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: lookup fails",
			id:   "5",
			mockCall: func(r *tablemocks.TableRepository) {
				r.On("GetByID", mock.Anything, "5").Return(nil, errors.New("timeout")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := tablemocks.NewTableRepository(t)
			tt.mockCall(repo)
			app := apptable.NewTableApp(&config.Config{}, repo)

			got, err := app.GetTableByID(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetTableByID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
				if tt.errCode == constant.ErrNotFound && err.Error() != "Table not found" {
					t.Fatalf("error message = %q", err.Error())
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetTableByID() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
