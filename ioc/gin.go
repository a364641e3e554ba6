package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/loyalty"
	"github.com/ecodeclub/eshop/internal/marketing"
	"github.com/gin-gonic/gin"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	cartM *cart.Module,
	loyaltyM *loyalty.Module,
	marketingM *marketing.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "meoying.com")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 游客也能操作购物车和触发对账
	cartM.Hdl.PublicRoutes(res.Engine)
	loyaltyM.Hdl.PublicRoutes(res.Engine)
	marketingM.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	cartM.Hdl.PrivateRoutes(res.Engine)
	loyaltyM.Hdl.PrivateRoutes(res.Engine)
	marketingM.Hdl.PrivateRoutes(res.Engine)
	return res
}
