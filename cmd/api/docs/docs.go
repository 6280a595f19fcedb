// Package docs registers the Swagger document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/upload": {
            "post": {
                "description": "Stores the uploaded CSV, generates multiple-choice questions for every row and writes them to the output CSV",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Upload a topics CSV and generate questions",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Topics CSV with Subject, Subtopic and Description columns",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Output file name (default generated_questions.csv)",
                        "name": "output",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.UploadResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}
                    }
                }
            }
        },
        "/jobs/{id}": {
            "get": {
                "description": "Returns the status, counters and row failures of a generation run",
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Get a generation job",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Job ID (ULID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.JobResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.RowError": {
            "type": "object",
            "properties": {
                "line": {"type": "integer"},
                "subject": {"type": "string"},
                "subtopic": {"type": "string"},
                "code": {"type": "string"},
                "message": {"type": "string"},
                "raw_text": {"type": "string"}
            }
        },
        "domain.ValidationError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"},
                "value": {}
            }
        },
        "dto.UploadResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "job_id": {"type": "string"},
                "filename": {"type": "string"},
                "output_file": {"type": "string"},
                "rows_read": {"type": "integer"},
                "generated": {"type": "integer"},
                "failed": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/domain.RowError"}
                }
            }
        },
        "dto.JobResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "input_file": {"type": "string"},
                "output_file": {"type": "string"},
                "status": {"type": "string"},
                "rows_read": {"type": "integer"},
                "questions_count": {"type": "integer"},
                "failed_count": {"type": "integer"},
                "error_message": {"type": "string"},
                "created_at": {"type": "string"},
                "finished_at": {"type": "string"},
                "failures": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/domain.RowError"}
                }
            }
        },
        "middleware.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "middleware.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "errors": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/domain.ValidationError"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Quiz Forge API",
	Description:      "Generates multiple-choice exam questions from a CSV of topics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
