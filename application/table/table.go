package table

import (
	"context"
	"errors"

	"github.com/muhammadheryan/table-booking/cmd/config"
	"github.com/muhammadheryan/table-booking/constant"
	"github.com/muhammadheryan/table-booking/model"
	tablerepo "github.com/muhammadheryan/table-booking/repository/table"
	cerr "github.com/muhammadheryan/table-booking/utils/errors"
	"github.com/muhammadheryan/table-booking/utils/logger"
	validatorx "github.com/muhammadheryan/table-booking/utils/validator"
	"go.uber.org/zap"
)

const tableNotFoundMessage = "Table not found"

type TableApp interface {
	CreateTable(ctx context.Context, req *model.CreateTableRequest) (*model.CreateTableResponse, error)
	ListTables(ctx context.Context) ([]model.Table, error)
	GetTableByID(ctx context.Context, id string) (*model.Table, error)
}

type tableAppImpl struct {
	config    *config.Config
	tableRepo tablerepo.TableRepository
}

func NewTableApp(config *config.Config, tableRepo tablerepo.TableRepository) TableApp {
	return &tableAppImpl{config: config, tableRepo: tableRepo}
}

func (s *tableAppImpl) CreateTable(ctx context.Context, req *model.CreateTableRequest) (*model.CreateTableResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, cerr.SetCustomErrorWithMessage(constant.ErrInvalidRequest, validatorx.Describe(err))
	}

	entity := &model.TableEntity{
		ID:       req.ID.String(),
		Number:   *req.Number,
		Places:   *req.Places,
		IsVip:    *req.IsVip,
		MinOrder: req.MinOrder,
	}

	var err error
	if s.config.Storage.TableIDUnique {
		err = s.tableRepo.Insert(ctx, entity)
	} else {
		err = s.tableRepo.Put(ctx, entity)
	}
	if err != nil {
		if errors.Is(err, tablerepo.ErrAlreadyExists) {
			return nil, cerr.SetCustomError(constant.ErrTableExists)
		}
		logger.Error("[CreateTable] err tableRepo.Put", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.CreateTableResponse{ID: req.ID}, nil
}

func (s *tableAppImpl) ListTables(ctx context.Context) ([]model.Table, error) {
	entities, err := s.tableRepo.List(ctx)
	if err != nil {
		logger.Error("[ListTables] err tableRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	tables := make([]model.Table, 0, len(entities))
	for _, e := range entities {
		tables = append(tables, model.NewTable(e))
	}
	return tables, nil
}

func (s *tableAppImpl) GetTableByID(ctx context.Context, id string) (*model.Table, error) {
	entity, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetTableByID] err tableRepo.GetByID", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, cerr.SetCustomErrorWithMessage(constant.ErrNotFound, tableNotFoundMessage)
	}

	table := model.NewTable(*entity)
	// a single table always reports minOrder
	if table.MinOrder == nil {
		zero := 0
		table.MinOrder = &zero
	}
	return &table, nil
}
