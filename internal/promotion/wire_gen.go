// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package promotion

import (
	"github.com/ecodeclub/eshop/internal/promotion/internal/repository"
	"github.com/ecodeclub/eshop/internal/promotion/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/promotion/internal/service"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB) (*Module, error) {
	service := InitService(db)
	module := &Module{
		Svc: service,
	}
	return module, nil
}

// wire.go:

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewGORMPromotionDAO(db)
		r := repository.NewPromotionRepository(d)
		svc = service.NewPromotionService(r)
	})
	return svc
}
