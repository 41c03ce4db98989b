// Package docs is generated by swaggo/swag from the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/game-categories": {
            "get": {
                "description": "Get the allowed categories with their loading state. A failed load yields an empty list and an error message.",
                "produces": ["application/json"],
                "tags": ["Games"],
                "summary": "Get game categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.CategorySnapshot"}}
                }
            }
        },
        "/game-categories/load": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Games"],
                "summary": "Reload game categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.CategorySnapshot"}}
                }
            }
        },
        "/games": {
            "get": {
                "description": "Get the games held by the catalog store together with its load status",
                "produces": ["application/json"],
                "tags": ["Games"],
                "summary": "Get all games",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.CatalogSnapshot"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "description": "Validate the game against the field rules and the known categories, then submit it. The game is only added once the remote catalog confirmed it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Games"],
                "summary": "Add a game",
                "parameters": [
                    {
                        "description": "Game to add",
                        "name": "game",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.NewGame"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Game"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ValidationErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/games/load": {
            "post": {
                "description": "Replace the held games with the remote catalog. A failed load keeps the previous games and reports the failure in the status.",
                "produces": ["application/json"],
                "tags": ["Games"],
                "summary": "Reload games",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.CatalogSnapshot"}}
                }
            }
        },
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Support"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "models.Game": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "id": {"type": "integer"},
                "is_multiplayer": {"type": "boolean"},
                "rating": {"type": "number"},
                "release_year": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "models.NewGame": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "is_multiplayer": {"type": "boolean"},
                "rating": {"type": "number", "minimum": 0, "maximum": 10},
                "release_year": {"type": "integer", "minimum": 1971, "maximum": 2024},
                "title": {"type": "string", "minLength": 2, "maxLength": 100}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "response.ValidationErrorResponse": {
            "type": "object",
            "properties": {"errors": {"type": "object", "additionalProperties": {"type": "string"}}}
        },
        "services.CatalogSnapshot": {
            "type": "object",
            "properties": {
                "records": {"type": "array", "items": {"$ref": "#/definitions/models.Game"}},
                "status": {"$ref": "#/definitions/services.Status"}
            }
        },
        "services.CategorySnapshot": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}},
                "error": {"type": "string"},
                "loading": {"type": "boolean"}
            }
        },
        "services.Status": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "loading": {"type": "boolean"},
                "phase": {"type": "string", "enum": ["idle", "loading", "ready", "failed"]}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Game Library API",
	Description:      "Session catalog of games kept in sync with the remote game library service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
