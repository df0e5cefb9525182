// Package docs holds the OpenAPI document behind /api/docs, kept in the swag template layout
// it is maintained by hand next to the handler annotations, update both together
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "servers": [
        {"url": "{{.BasePath}}"}
    ],
    "paths": {
        "/internships/search": {
            "post": {
                "tags": ["internships"],
                "summary": "Search internships",
                "description": "Filters the candidate set and returns one page, omitted stipend bounds default to the candidate bounds",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.SearchInput"}}}
                },
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.SearchResult"}}}},
                    "422": {"description": "Invalid filter spec or page", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/internships/facets": {
            "post": {
                "tags": ["internships"],
                "summary": "Facet counts",
                "description": "Per value counts where each facet ignores its own selection",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.FacetsInput"}}}
                },
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/discovery.Facets"}}}}
                }
            }
        },
        "/internships/filters/toggle": {
            "post": {
                "tags": ["internships"],
                "summary": "Toggle a filter value",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ToggleInput"}}}
                },
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.SpecResult"}}}}
                }
            }
        },
        "/internships/filters/clear": {
            "post": {
                "tags": ["internships"],
                "summary": "Cleared filter spec",
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.SpecResult"}}}}
                }
            }
        },
        "/internships/pending": {
            "get": {
                "tags": ["internships"],
                "summary": "Postings awaiting college review",
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/domain.Posting"}}}}}
                }
            }
        },
        "/internships/{id}": {
            "get": {
                "tags": ["internships"],
                "summary": "Get one posting",
                "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}],
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Posting"}}}},
                    "404": {"description": "Not Found", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/internships": {
            "post": {
                "tags": ["internships"],
                "summary": "Post an internship",
                "description": "New postings are pending and unverified",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.PostingInput"}}}
                },
                "responses": {
                    "201": {"description": "Created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Posting"}}}},
                    "503": {"description": "Listing source is read only", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/internships/{id}/review": {
            "post": {
                "tags": ["internships"],
                "summary": "Review a pending posting",
                "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}],
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ReviewInput"}}}
                },
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Posting"}}}},
                    "409": {"description": "Posting is not pending", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/applications": {
            "get": {
                "tags": ["applications"],
                "summary": "A student's applications",
                "parameters": [{"name": "student_id", "in": "query", "required": true, "schema": {"type": "string"}}],
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/applications.ListResult"}}}}
                }
            },
            "post": {
                "tags": ["applications"],
                "summary": "Apply to an internship",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/applications.ApplyInput"}}}
                },
                "responses": {
                    "201": {"description": "Created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/applications.Application"}}}},
                    "409": {"description": "Already applied or listing closed", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/applications/{id}/status": {
            "patch": {
                "tags": ["applications"],
                "summary": "Move an application",
                "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}],
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/applications.StatusInput"}}}
                },
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/applications.Application"}}}},
                    "409": {"description": "Transition not allowed", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/meta/health": {
            "get": {"tags": ["meta"], "summary": "Liveness", "responses": {"200": {"description": "OK"}}}
        },
        "/meta/ready": {
            "get": {
                "tags": ["meta"],
                "summary": "Readiness of configured backends",
                "responses": {"200": {"description": "OK"}, "503": {"description": "A backend failed its ping"}}
            }
        },
        "/meta/version": {
            "get": {"tags": ["meta"], "summary": "Build info", "responses": {"200": {"description": "OK"}}}
        },
        "/meta/service": {
            "get": {"tags": ["meta"], "summary": "Service name and uptime", "responses": {"200": {"description": "OK"}}}
        }
    },
    "components": {
        "schemas": {
            "domain.StipendInput": {
                "type": "object",
                "properties": {
                    "min": {"type": "integer", "example": 10000},
                    "max": {"type": "integer", "example": 25000}
                }
            },
            "domain.SpecInput": {
                "type": "object",
                "properties": {
                    "search": {"type": "string", "example": "react"},
                    "domains": {"type": "array", "items": {"type": "string"}, "example": ["Software Development"]},
                    "location_modes": {"type": "array", "items": {"type": "string", "enum": ["remote", "on-site", "hybrid"]}},
                    "duration": {"type": "string", "enum": ["1-3", "3-6", "6+"]},
                    "stipend": {"$ref": "#/components/schemas/domain.StipendInput"},
                    "skills": {"type": "array", "items": {"type": "string"}, "example": ["React"]}
                }
            },
            "domain.SearchInput": {
                "type": "object",
                "properties": {
                    "spec": {"$ref": "#/components/schemas/domain.SpecInput"},
                    "page": {"type": "integer", "example": 1, "description": "1 based, defaults to 1"},
                    "page_size": {"type": "integer", "minimum": 1, "maximum": 100, "example": 10},
                    "order": {"type": "string", "enum": ["recent", "stipend_desc", "stipend_asc", "title"]}
                }
            },
            "domain.FacetsInput": {
                "type": "object",
                "properties": {"spec": {"$ref": "#/components/schemas/domain.SpecInput"}}
            },
            "domain.ToggleInput": {
                "type": "object",
                "required": ["facet", "value"],
                "properties": {
                    "spec": {"$ref": "#/components/schemas/domain.SpecInput"},
                    "facet": {"type": "string", "enum": ["domain", "location_mode", "skill"]},
                    "value": {"type": "string", "example": "React"}
                }
            },
            "discovery.StipendRange": {
                "type": "object",
                "properties": {"min": {"type": "integer"}, "max": {"type": "integer"}}
            },
            "discovery.FilterSpec": {
                "type": "object",
                "properties": {
                    "search": {"type": "string"},
                    "domains": {"type": "array", "items": {"type": "string"}},
                    "location_modes": {"type": "array", "items": {"type": "string"}},
                    "duration": {"type": "string"},
                    "stipend": {"$ref": "#/components/schemas/discovery.StipendRange"},
                    "skills": {"type": "array", "items": {"type": "string"}}
                }
            },
            "domain.SpecResult": {
                "type": "object",
                "properties": {
                    "spec": {"$ref": "#/components/schemas/discovery.FilterSpec"},
                    "active": {"type": "array", "items": {"type": "string"}},
                    "bounds": {"$ref": "#/components/schemas/discovery.StipendRange"}
                }
            },
            "discovery.FacetCount": {
                "type": "object",
                "properties": {
                    "value": {"type": "string"},
                    "count": {"type": "integer"},
                    "selected": {"type": "boolean"}
                }
            },
            "discovery.Facets": {
                "type": "object",
                "properties": {
                    "total": {"type": "integer"},
                    "domains": {"type": "array", "items": {"$ref": "#/components/schemas/discovery.FacetCount"}},
                    "location_modes": {"type": "array", "items": {"$ref": "#/components/schemas/discovery.FacetCount"}},
                    "durations": {"type": "array", "items": {"$ref": "#/components/schemas/discovery.FacetCount"}},
                    "skills": {"type": "array", "items": {"$ref": "#/components/schemas/discovery.FacetCount"}},
                    "bounds": {"$ref": "#/components/schemas/discovery.StipendRange"}
                }
            },
            "discovery.Verifier": {
                "type": "object",
                "properties": {
                    "college": {"type": "string"},
                    "verified_at": {"type": "string", "format": "date-time"},
                    "rating": {"type": "integer"},
                    "comment": {"type": "string"}
                }
            },
            "discovery.Listing": {
                "type": "object",
                "properties": {
                    "id": {"type": "string"},
                    "title": {"type": "string"},
                    "company": {"type": "string"},
                    "domain": {"type": "string"},
                    "location_mode": {"type": "string"},
                    "city": {"type": "string"},
                    "stipend": {"type": "integer"},
                    "duration": {"type": "string"},
                    "skills": {"type": "array", "items": {"type": "string"}},
                    "verified": {"type": "boolean"},
                    "verified_by": {"$ref": "#/components/schemas/discovery.Verifier"},
                    "posted": {"type": "object"},
                    "description": {"type": "string"},
                    "start_date": {"type": "string", "format": "date-time"},
                    "closes_at": {"type": "string", "format": "date-time"}
                }
            },
            "domain.SearchResult": {
                "type": "object",
                "properties": {
                    "items": {"type": "array", "items": {"$ref": "#/components/schemas/discovery.Listing"}},
                    "active": {"type": "array", "items": {"type": "string"}},
                    "empty": {"type": "boolean"}
                }
            },
            "domain.Posting": {
                "allOf": [
                    {"$ref": "#/components/schemas/discovery.Listing"},
                    {
                        "type": "object",
                        "properties": {
                            "status": {"type": "string", "enum": ["pending", "approved", "rejected", "closed"]},
                            "contact_email": {"type": "string"},
                            "created_at": {"type": "string", "format": "date-time"}
                        }
                    }
                ]
            },
            "domain.PostingInput": {
                "type": "object",
                "required": ["title", "company", "domain", "location_mode", "duration", "description", "skills", "closes_at", "contact_email"],
                "properties": {
                    "title": {"type": "string", "example": "Frontend Developer Intern"},
                    "company": {"type": "string", "example": "TechCorp Solutions"},
                    "domain": {"type": "string", "example": "Software Development"},
                    "location_mode": {"type": "string", "example": "remote"},
                    "duration": {"type": "string", "example": "3-6"},
                    "city": {"type": "string", "example": "Bangalore"},
                    "description": {"type": "string"},
                    "stipend": {"type": "integer", "minimum": 0, "example": 15000},
                    "skills": {"type": "array", "items": {"type": "string"}, "example": ["React"]},
                    "start_date": {"type": "string", "format": "date-time"},
                    "closes_at": {"type": "string", "format": "date-time"},
                    "contact_email": {"type": "string", "example": "hr@techcorp.example"}
                }
            },
            "domain.ReviewInput": {
                "type": "object",
                "required": ["college", "decision", "rating"],
                "properties": {
                    "college": {"type": "string", "example": "IIT Delhi"},
                    "decision": {"type": "string", "enum": ["approve", "reject"]},
                    "comment": {"type": "string"},
                    "rating": {"type": "integer", "minimum": 1, "maximum": 5, "example": 4}
                }
            },
            "applications.ApplyInput": {
                "type": "object",
                "required": ["student_id", "listing_id"],
                "properties": {
                    "student_id": {"type": "string"},
                    "listing_id": {"type": "string"},
                    "note": {"type": "string"}
                }
            },
            "applications.StatusInput": {
                "type": "object",
                "required": ["status"],
                "properties": {
                    "status": {"type": "string", "enum": ["Applied", "Under Review", "Accepted", "Rejected"]},
                    "feedback": {"type": "string"}
                }
            },
            "applications.Application": {
                "type": "object",
                "properties": {
                    "id": {"type": "string"},
                    "student_id": {"type": "string"},
                    "listing_id": {"type": "string"},
                    "internship_title": {"type": "string"},
                    "company_name": {"type": "string"},
                    "note": {"type": "string"},
                    "feedback": {"type": "string"},
                    "status": {"type": "string"},
                    "applied_at": {"type": "string", "format": "date-time"},
                    "updated_at": {"type": "string", "format": "date-time"}
                }
            },
            "applications.Counts": {
                "type": "object",
                "properties": {
                    "applied": {"type": "integer"},
                    "under_review": {"type": "integer"},
                    "accepted": {"type": "integer"},
                    "rejected": {"type": "integer"}
                }
            },
            "applications.ListResult": {
                "type": "object",
                "properties": {
                    "items": {"type": "array", "items": {"$ref": "#/components/schemas/applications.Application"}},
                    "counts": {"$ref": "#/components/schemas/applications.Counts"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "InternHub API",
	Description:      "Internship discovery, postings, college review and student applications",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
