package routers

import (
	"database/sql"
	"time"

	"beautystoreapi/config"
	"beautystoreapi/controllers"
	"beautystoreapi/middlewares"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Route builds the engine and the connection pool. The returned *sql.DB is
// handed back so main can close it after the server drains.
func Route(conf *config.Config, logger *logrus.Logger, indb *sql.DB) (*gin.Engine, *sql.DB) {
	router := gin.Default()
	router.Use(CORS())
	router.Use(middlewares.RequestLogger(logger))

	api := controllers.NewAPI()
	api.Log = logger
	api.Db = newDB(conf, logger, indb)
	// queue rather than reject when all connections are busy
	api.Db.SetMaxOpenConns(10)
	api.Db.SetConnMaxLifetime(5 * time.Minute)

	products := router.Group("/products")
	{
		products.GET("", api.GetCatalog)
		products.GET("/export", api.ExportProducts)
		products.GET("/:id", api.GetProduct)
		products.POST("", api.CreateProduct)
		products.PUT("/:id", api.UpdateProduct)
		products.DELETE("/:id", api.DeleteProduct)
		// delete by name carries the name in the request body
		products.DELETE("", api.DeleteProductByName)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", api.GetCategories)
		categories.GET("/:id", api.GetCategory)
		categories.POST("", api.CreateCategory)
		categories.PUT("/:id", api.UpdateCategory)
		categories.DELETE("/:id", api.DeleteCategory)
	}

	brands := router.Group("/brands")
	{
		brands.GET("", api.GetBrands)
		brands.GET("/:id", api.GetBrand)
		brands.POST("", api.CreateBrand)
		brands.PUT("/:id", api.UpdateBrand)
		brands.DELETE("/:id", api.DeleteBrand)
	}

	return router, api.Db
}

// CORS Cross Origin Resource Sharing
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, "+
			"Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func newDB(conf *config.Config, logger *logrus.Logger, indb *sql.DB) *sql.DB {
	if indb != nil {
		return indb
	}

	conn, err := sql.Open("postgres", conf.DSN())
	if err != nil {
		logger.Fatalf("cannot connect to db %s@%s/%s: %v", conf.DBUser, conf.DBHost, conf.DBName, err)
	}

	if err := conn.Ping(); err != nil {
		logger.Fatal(err)
	}

	return conn
}
