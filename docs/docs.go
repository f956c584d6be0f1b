// Package docs registers the OpenAPI document served under /swagger.
//
// The document is maintained by hand in the layout swag init emits. Every
// @Router annotation in internal/api/handler must have a matching operation
// here; docs_test.go enforces it.
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/hello": {
            "get": {"tags": ["health"], "summary": "Greeting with the server time", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/users": {
            "get": {"tags": ["users"], "summary": "List active users", "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 10)", "name": "pageSize", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}},
            "post": {"tags": ["users"], "summary": "Create a user", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "User details", "name": "body", "in": "body", "required": true,
                    "schema": {"$ref": "#/definitions/handler.createUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Envelope"}}}}
        },
        "/users/{id}": {
            "get": {"tags": ["users"], "summary": "Get a user", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Envelope"}}}},
            "put": {"tags": ["users"], "summary": "Update a user", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "User id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true,
                        "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Envelope"}}}},
            "delete": {"tags": ["users"], "summary": "Deactivate a user", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Envelope"}}}}
        },
        "/{version}/roles": {
            "get": {"tags": ["roles"], "summary": "List every role", "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/version"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}},
            "post": {"tags": ["roles"], "summary": "Create a role", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/version"},
                    {"description": "Role definition", "name": "body", "in": "body", "required": true,
                        "schema": {"$ref": "#/definitions/handler.createRoleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Envelope"}}}}
        },
        "/{version}/roles/{id}": {
            "get": {"tags": ["roles"], "summary": "Get a role", "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/version"}, {"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Envelope"}}}},
            "put": {"tags": ["roles"], "summary": "Update a role", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/version"},
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true,
                        "schema": {"$ref": "#/definitions/handler.updateRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Envelope"}}}},
            "delete": {"tags": ["roles"], "summary": "Delete a role", "description": "Refused with 409 while any user still holds the role.",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/version"}, {"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Envelope"}}}}
        },
        "/{version}/roles/users/{userId}": {
            "get": {"tags": ["roles"], "summary": "List the roles held by a user", "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/version"}, {"type": "string", "name": "userId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}},
            "post": {"tags": ["roles"], "summary": "Replace the roles held by a user", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/version"},
                    {"type": "string", "name": "userId", "in": "path", "required": true},
                    {"description": "Role names", "name": "body", "in": "body", "required": true,
                        "schema": {"$ref": "#/definitions/handler.assignRolesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Envelope"}}}}
        },
        "/{version}/roles/users/{userId}/permissions": {
            "get": {"tags": ["roles"], "summary": "Effective permissions of a user", "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/version"}, {"type": "string", "name": "userId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}}
        }
    },
    "parameters": {
        "version": {"type": "string", "enum": ["v1", "v2"], "description": "API version", "name": "version", "in": "path", "required": true}
    },
    "definitions": {
        "handler.createUserRequest": {
            "type": "object",
            "required": ["name", "email", "role"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "user"]}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "user"]},
                "status": {"type": "string", "enum": ["active", "inactive"]}
            }
        },
        "handler.createRoleRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "permissions": {"type": "array", "items": {"$ref": "#/definitions/domain.Permission"}},
                "description": {"type": "string"},
                "metadata": {"type": "object", "additionalProperties": true}
            }
        },
        "handler.updateRoleRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "permissions": {"type": "array", "items": {"$ref": "#/definitions/domain.Permission"}},
                "description": {"type": "string"},
                "metadata": {"type": "object", "additionalProperties": true}
            }
        },
        "handler.assignRolesRequest": {
            "type": "object",
            "properties": {
                "roles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.Permission": {
            "type": "string",
            "enum": ["create_user", "read_user", "update_user", "delete_user", "assign_roles", "manage_roles"]
        },
        "response.Envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "status": {"type": "string"},
                "error": {"$ref": "#/definitions/response.ErrorBody"},
                "pagination": {"$ref": "#/definitions/response.Pagination"},
                "_links": {"type": "object", "additionalProperties": true}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "response.Pagination": {
            "type": "object",
            "properties": {
                "currentPage": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "totalItems": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Access Control API",
	Description:      "Users, versioned roles and effective permissions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
