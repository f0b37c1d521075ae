package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "University Registrar API",
        "description": "Course registration and graduation progress service",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Course catalog management"},
        {"name": "Offerings", "description": "Semester offerings and seats"},
        {"name": "Students", "description": "Student records and transcripts"},
        {"name": "Registration", "description": "Enrollment and withdrawal"},
        {"name": "Graduation", "description": "Degree progress and risk"},
        {"name": "Reports", "description": "Async report exports"},
        {"name": "Monitoring", "description": "Health and stats"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Monitoring"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/stats": {
            "get": {
                "tags": ["Monitoring"],
                "summary": "Aggregated request and enrollment counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{code}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course",
                "parameters": [
                    {"name": "code", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Courses"],
                "summary": "Update course",
                "parameters": [
                    {"name": "code", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Remove course from catalog",
                "parameters": [
                    {"name": "code", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/offerings": {
            "get": {
                "tags": ["Offerings"],
                "summary": "List offerings",
                "parameters": [
                    {"name": "semester", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Offerings"],
                "summary": "Create offering",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateOfferingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/offerings/{key}": {
            "get": {
                "tags": ["Offerings"],
                "summary": "Get offering",
                "parameters": [
                    {"name": "key", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Offerings"],
                "summary": "Update offering state",
                "parameters": [
                    {"name": "key", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateOfferingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Students"],
                "summary": "Update student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/completions": {
            "post": {
                "tags": ["Students"],
                "summary": "Record completed course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CompleteCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/schedule": {
            "get": {
                "tags": ["Registration"],
                "summary": "Registered offerings for a semester",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/progress": {
            "get": {
                "tags": ["Graduation"],
                "summary": "Graduation progress",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/graduation-risk": {
            "get": {
                "tags": ["Graduation"],
                "summary": "Graduation risk summary",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "semesters", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/registrations": {
            "post": {
                "tags": ["Registration"],
                "summary": "Register a student for an offering",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegistrationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/registrations/withdraw": {
            "post": {
                "tags": ["Registration"],
                "summary": "Withdraw a student from an offering",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegistrationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports": {
            "post": {
                "tags": ["Reports"],
                "summary": "Queue report export",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/{id}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Report job status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/download/{token}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download finished report",
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        }
    },
    "definitions": {
        "CreateCourseRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "title": {"type": "string"},
                "credits": {"type": "integer"},
                "prerequisites": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["code", "title", "credits"]
        },
        "UpdateCourseRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "credits": {"type": "integer"}
            }
        },
        "CreateOfferingRequest": {
            "type": "object",
            "properties": {
                "semester": {"type": "string"},
                "course_code": {"type": "string"},
                "seat_limit": {"type": "integer"},
                "time_slots": {"type": "array", "items": {"$ref": "#/definitions/TimeSlotRequest"}}
            },
            "required": ["semester", "course_code"]
        },
        "UpdateOfferingRequest": {
            "type": "object",
            "properties": {
                "open": {"type": "boolean"},
                "seat_limit": {"type": "integer"}
            }
        },
        "TimeSlotRequest": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "start_minutes": {"type": "integer"},
                "end_minutes": {"type": "integer"}
            },
            "required": ["day", "start_minutes", "end_minutes"]
        },
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "track": {"type": "string"},
                "max_credits_per_semester": {"type": "integer"}
            },
            "required": ["id", "name", "max_credits_per_semester"]
        },
        "UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "track": {"type": "string"},
                "max_credits_per_semester": {"type": "integer"}
            }
        },
        "CompleteCourseRequest": {
            "type": "object",
            "properties": {
                "course_code": {"type": "string"},
                "grade": {"type": "string"}
            },
            "required": ["course_code"]
        },
        "RegistrationRequest": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "offering_key": {"type": "string"}
            },
            "required": ["student_id", "offering_key"]
        },
        "ReportRequest": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["TRANSCRIPT", "PROGRESS", "ROSTER"]},
                "student_id": {"type": "string"},
                "offering_key": {"type": "string"},
                "format": {"type": "string", "enum": ["CSV", "PDF"]}
            },
            "required": ["type", "format"]
        },
        "RegistrationResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "Progress": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "completed_credits": {"type": "integer"},
                "remaining_credits": {"type": "integer"},
                "remaining_required_courses": {"type": "array", "items": {"type": "string"}},
                "completed_track_electives": {"type": "integer"},
                "required_track_electives": {"type": "integer"},
                "eligible": {"type": "boolean"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
