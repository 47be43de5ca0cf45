// Package docs holds the swagger document served at /swagger/*any. Keep it in sync with the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Service"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/partition": {
            "get": {
                "description": "Enumerate the N^3 sub-volumes of the simulation box with bounds and comparison operators",
                "produces": ["application/json"],
                "tags": ["Partition"],
                "summary": "Get sub-volume grid",
                "parameters": [
                    {"type": "number", "description": "Box side length", "name": "lbox", "in": "query"},
                    {"type": "integer", "description": "Subdivisions per axis", "name": "nsub", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ds.PartitionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/queries/publish": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Render both query lists and upload them to the object store (publisher only)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Queries"],
                "summary": "Publish query lists",
                "parameters": [
                    {"description": "Overrides of the configured parameters", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/handler.GenerationBody"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ds.PublishResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/queries/{kind}": {
            "get": {
                "description": "Render the fetch or count query list for every sub-volume",
                "produces": ["application/json", "text/plain"],
                "tags": ["Queries"],
                "summary": "Get query list",
                "parameters": [
                    {"type": "string", "description": "fetch or count", "name": "kind", "in": "path", "required": true},
                    {"type": "number", "description": "Box side length", "name": "lbox", "in": "query"},
                    {"type": "integer", "description": "Subdivisions per axis", "name": "nsub", "in": "query"},
                    {"type": "string", "description": "Snapshot id", "name": "snapnum", "in": "query"},
                    {"type": "string", "description": "Source table", "name": "table", "in": "query"},
                    {"type": "string", "description": "Id column for count queries", "name": "id_column", "in": "query"},
                    {"type": "string", "description": "Number format: fixed or legacy", "name": "format", "in": "query"},
                    {"type": "string", "description": "Set to text to get the list file body", "name": "as", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ds.QueriesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/tokens/revoke": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Put the current bearer token into the Redis blacklist",
                "produces": ["application/json"],
                "tags": ["Tokens"],
                "summary": "Revoke token",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "ds.BoxSpec": {
            "type": "object",
            "properties": {
                "side_length": {"type": "number"},
                "subdivisions_per_axis": {"type": "integer"}
            }
        },
        "ds.SubVolumeIndex": {
            "type": "object",
            "properties": {
                "i": {"type": "integer"},
                "j": {"type": "integer"},
                "k": {"type": "integer"}
            }
        },
        "ds.SubVolumeBounds": {
            "type": "object",
            "properties": {
                "x_min": {"type": "number"},
                "x_max": {"type": "number"},
                "y_min": {"type": "number"},
                "y_max": {"type": "number"},
                "z_min": {"type": "number"},
                "z_max": {"type": "number"}
            }
        },
        "ds.AxisInclusion": {
            "type": "object",
            "properties": {
                "lower_inclusive": {"type": "boolean"}
            }
        },
        "ds.BoundaryInclusion": {
            "type": "object",
            "properties": {
                "x": {"$ref": "#/definitions/ds.AxisInclusion"},
                "y": {"$ref": "#/definitions/ds.AxisInclusion"},
                "z": {"$ref": "#/definitions/ds.AxisInclusion"}
            }
        },
        "ds.SubVolume": {
            "type": "object",
            "properties": {
                "index": {"$ref": "#/definitions/ds.SubVolumeIndex"},
                "bounds": {"$ref": "#/definitions/ds.SubVolumeBounds"},
                "inclusion": {"$ref": "#/definitions/ds.BoundaryInclusion"}
            }
        },
        "ds.PartitionResponse": {
            "type": "object",
            "properties": {
                "box": {"$ref": "#/definitions/ds.BoxSpec"},
                "total": {"type": "integer"},
                "subvolumes": {"type": "array", "items": {"$ref": "#/definitions/ds.SubVolume"}}
            }
        },
        "ds.QueryParams": {
            "type": "object",
            "properties": {
                "snapnum": {"type": "string"},
                "table": {"type": "string"},
                "id_column": {"type": "string"}
            }
        },
        "ds.QueryRecord": {
            "type": "object",
            "properties": {
                "index": {"type": "integer"},
                "kind": {"type": "string"},
                "subvolume": {"$ref": "#/definitions/ds.SubVolumeIndex"},
                "query": {"type": "string"},
                "filename": {"type": "string"}
            }
        },
        "ds.QueriesResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "box": {"$ref": "#/definitions/ds.BoxSpec"},
                "params": {"$ref": "#/definitions/ds.QueryParams"},
                "format": {"type": "string"},
                "total": {"type": "integer"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/ds.QueryRecord"}}
            }
        },
        "ds.PublishResponse": {
            "type": "object",
            "properties": {
                "bucket": {"type": "string"},
                "objects": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.GenerationBody": {
            "type": "object",
            "properties": {
                "lbox": {"type": "number"},
                "nsub": {"type": "integer"},
                "snapnum": {"type": "string"},
                "table": {"type": "string"},
                "id_column": {"type": "string"},
                "format": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT Bearer token. Example: \"Bearer {token}\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Halocat Query Service API",
	Description:      "Sub-volume partition and catalog query list generator",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
