package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/little-software-engineer/fridge-recipe-finder/config"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/application"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire their dependencies from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	jwtManager  *helpers.JWTManager
	recipeAPI   application.RecipeAPI
)

func SetConfig(c *config.Config)             { cfg = c }
func GetConfig() *config.Config              { return cfg }
func SetLogger(l *logrus.Logger)             { logger = l }
func GetLogger() *logrus.Logger              { return logger }
func SetPGPool(p *pgxpool.Pool)              { pgPool = p }
func GetPGPool() *pgxpool.Pool               { return pgPool }
func SetRedis(r *redis.Client)               { redisClient = r }
func GetRedis() *redis.Client                { return redisClient }
func SetJWT(m *helpers.JWTManager)           { jwtManager = m }
func GetJWT() *helpers.JWTManager            { return jwtManager }
func SetRecipeAPI(api application.RecipeAPI) { recipeAPI = api }
func GetRecipeAPI() application.RecipeAPI    { return recipeAPI }
