package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SIGUE Stub Gateway",
        "description": "In-memory university gateway for developing and testing the SIGUE client",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": ["http"],
    "securityDefinitions": {"Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}},
    "tags": [
        {"name": "Auth"},
        {"name": "System"},
        {"name": "Careers"},
        {"name": "Classrooms"},
        {"name": "Schedules"},
        {"name": "Subjects"},
        {"name": "Teachers"},
        {"name": "Students"},
        {"name": "Users"},
        {"name": "Groups"}
    ],
    "paths": {
        "/health": {"get": {"tags": ["System"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}},
        "/metrics": {
            "get": {
                "tags": ["System"],
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "401": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/careers": {
            "get": {
                "tags": ["Careers"],
                "summary": "List careers",
                "security": [{"Bearer": []}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Career"}}
                    },
                    "401": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Careers"],
                "summary": "Create career",
                "security": [{"Bearer": []}],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/CareerPayload"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Career"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/careers/{id}": {
            "get": {
                "tags": ["Careers"],
                "summary": "Get career",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Career"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "put": {
                "tags": ["Careers"],
                "summary": "Update career",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/CareerPayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Career"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Careers"],
                "summary": "Delete career",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/classrooms": {
            "get": {
                "tags": ["Classrooms"],
                "summary": "List classrooms",
                "security": [{"Bearer": []}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Classroom"}}
                    },
                    "401": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Classrooms"],
                "summary": "Create classroom",
                "security": [{"Bearer": []}],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ClassroomPayload"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Classroom"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/classrooms/{id}": {
            "get": {
                "tags": ["Classrooms"],
                "summary": "Get classroom",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Classroom"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "put": {
                "tags": ["Classrooms"],
                "summary": "Update classroom",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ClassroomPayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Classroom"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Classrooms"],
                "summary": "Delete classroom",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/schedules": {
            "get": {
                "tags": ["Schedules"],
                "summary": "List schedules",
                "security": [{"Bearer": []}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Schedule"}}
                    },
                    "401": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Schedules"],
                "summary": "Create schedule",
                "security": [{"Bearer": []}],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/SchedulePayload"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Schedule"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/schedules/{id}": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Get schedule",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Schedule"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "put": {
                "tags": ["Schedules"],
                "summary": "Update schedule",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/SchedulePayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Schedule"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Schedules"],
                "summary": "Delete schedule",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subjects",
                "security": [{"Bearer": []}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Subject"}}
                    },
                    "401": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                },
                "parameters": [{"name": "careerId", "in": "query", "type": "integer"}]
            },
            "post": {
                "tags": ["Subjects"],
                "summary": "Create subject",
                "security": [{"Bearer": []}],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/SubjectPayload"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Subject"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/subjects/{id}": {
            "get": {
                "tags": ["Subjects"],
                "summary": "Get subject",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Subject"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "put": {
                "tags": ["Subjects"],
                "summary": "Update subject",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/SubjectPayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Subject"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Subjects"],
                "summary": "Delete subject",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "security": [{"Bearer": []}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Teacher"}}
                    },
                    "401": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Teachers"],
                "summary": "Create teacher",
                "security": [{"Bearer": []}],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/TeacherPayload"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Teacher"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/teachers/{id}": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Get teacher",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Teacher"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "put": {
                "tags": ["Teachers"],
                "summary": "Update teacher",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/TeacherPayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Teacher"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Teachers"],
                "summary": "Delete teacher",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/teachers/me": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Get the caller's own teacher profile",
                "security": [{"Bearer": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Teacher"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "security": [{"Bearer": []}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}
                    },
                    "401": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "security": [{"Bearer": []}],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/StudentPayload"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/StudentPayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/students/me": {
            "get": {
                "tags": ["Students"],
                "summary": "Get the caller's own student profile",
                "security": [{"Bearer": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "security": [{"Bearer": []}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}
                    },
                    "401": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Users"],
                "summary": "Create user",
                "security": [{"Bearer": []}],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/UserPayload"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get user",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "put": {
                "tags": ["Users"],
                "summary": "Update user",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/UserPayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete user",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/groups": {
            "get": {
                "tags": ["Groups"],
                "summary": "List groups",
                "security": [{"Bearer": []}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Group"}}
                    },
                    "401": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Groups"],
                "summary": "Create group",
                "security": [{"Bearer": []}],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/GroupPayload"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Group"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/groups/{id}": {
            "get": {
                "tags": ["Groups"],
                "summary": "Get group",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Group"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "put": {
                "tags": ["Groups"],
                "summary": "Update group",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/GroupPayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Group"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Groups"],
                "summary": "Delete group",
                "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/users/unassigned": {
            "get": {
                "tags": ["Users"],
                "summary": "List accounts of a role without a linked profile",
                "security": [{"Bearer": []}],
                "parameters": [
                    {
                        "name": "role",
                        "in": "query",
                        "required": true,
                        "type": "string",
                        "enum": ["ADMIN", "TEACHER", "STUDENT"]
                    },
                    {
                        "name": "entity",
                        "in": "query",
                        "required": true,
                        "type": "string",
                        "enum": ["teachers", "students"]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}},
            "required": ["username", "password"]
        },
        "UserProfile": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/UserProfile"}}
        },
        "Career": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "semesters": {"type": "integer"}}
        },
        "CareerPayload": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "semesters": {"type": "integer"}},
            "required": ["name", "semesters"]
        },
        "Classroom": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "building": {"type": "string"}}
        },
        "ClassroomPayload": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "building": {"type": "string"}},
            "required": ["name", "building"]
        },
        "Schedule": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "time": {"type": "string", "example": "07:00"},
                "shift": {"type": "string", "enum": ["MATUTINO", "VESPERTINO"]}
            }
        },
        "SchedulePayload": {
            "type": "object",
            "properties": {
                "time": {"type": "string", "example": "07:00"},
                "shift": {"type": "string", "enum": ["MATUTINO", "VESPERTINO"]}
            },
            "required": ["time", "shift"]
        },
        "Subject": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "credits": {"type": "integer"},
                "semester": {"type": "integer"},
                "careerId": {"type": "integer"}
            }
        },
        "SubjectPayload": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "credits": {"type": "integer"},
                "semester": {"type": "integer"},
                "careerId": {"type": "integer"}
            },
            "required": ["name", "credits", "semester", "careerId"]
        },
        "CareerRef": {"type": "object", "properties": {"careerId": {"type": "integer"}, "name": {"type": "string"}}},
        "SubjectRef": {"type": "object", "properties": {"subjectId": {"type": "integer"}, "name": {"type": "string"}}},
        "Teacher": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "degree": {"type": "string"},
                "userId": {"type": "integer"},
                "careers": {"type": "array", "items": {"$ref": "#/definitions/CareerRef"}},
                "subjects": {"type": "array", "items": {"$ref": "#/definitions/SubjectRef"}}
            }
        },
        "TeacherPayload": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "degree": {"type": "string", "enum": ["LICENCIATURA", "MAESTRIA", "DOCTORADO"]},
                "userId": {"type": "integer"},
                "careerIds": {"type": "array", "items": {"type": "integer"}},
                "subjectIds": {"type": "array", "items": {"type": "integer"}}
            },
            "required": ["degree"]
        },
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "status": {"type": "string"},
                "dateOfBirth": {"type": "string", "format": "date"},
                "careerId": {"type": "integer"},
                "userId": {"type": "integer"},
                "subjects": {"type": "array", "items": {"$ref": "#/definitions/SubjectRef"}}
            }
        },
        "StudentPayload": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "status": {"type": "string", "enum": ["ACTIVE", "INACTIVE"]},
                "dateOfBirth": {"type": "string", "format": "date"},
                "careerId": {"type": "integer"},
                "userId": {"type": "integer"},
                "subjects": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "email": {"type": "string"},
                "username": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "UserPayload": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "username": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["ADMIN", "TEACHER", "STUDENT"]}
            },
            "required": ["username"]
        },
        "GroupStudent": {
            "type": "object",
            "properties": {
                "studentId": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "Group": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "careerId": {"type": "integer"},
                "careerName": {"type": "string"},
                "subjectId": {"type": "integer"},
                "subjectName": {"type": "string"},
                "teacherId": {"type": "integer"},
                "teacherName": {"type": "string"},
                "classroomId": {"type": "integer"},
                "classroomName": {"type": "string"},
                "scheduleId": {"type": "integer"},
                "scheduleTime": {"type": "string"},
                "semester": {"type": "integer"},
                "maxStudents": {"type": "integer"},
                "students": {"type": "array", "items": {"$ref": "#/definitions/GroupStudent"}}
            }
        },
        "GroupPayload": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "careerId": {"type": "integer"},
                "subjectId": {"type": "integer"},
                "teacherId": {"type": "integer"},
                "classroomId": {"type": "integer"},
                "scheduleId": {"type": "integer"},
                "semester": {"type": "integer"},
                "maxStudents": {"type": "integer"}
            },
            "required": [
                "name",
                "careerId",
                "subjectId",
                "teacherId",
                "classroomId",
                "scheduleId",
                "semester",
                "maxStudents"
            ]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "field": {"type": "string"}
            }
        },
        "ErrorEnvelope": {"type": "object", "properties": {"error": {"$ref": "#/definitions/APIError"}}}
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
