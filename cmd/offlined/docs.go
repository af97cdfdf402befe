package main

// General API documentation for swaggo. Run `swag init` to generate docs.
//
// @title           offlined API
// @version         1.0
// @description     HTTP API for the single-slot offline model session.
//
// @contact.name   offlined maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
