package handlers

// @title Housing Prediction API
// @version 1.0
// @description Normalizes housing feature payloads and forwards them to a hosted regression model
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/your-org/housing-prediction-api

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @tag.name predictions
// @tag.description Median home value predictions
