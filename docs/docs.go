// Package docs registra la spec OpenAPI que sirve /swagger.
// Mantenida a mano (sin generación automática): cubre las rutas principales.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/pets": {
            "get": {
                "summary": "Listado de mascotas con filtros, orden y paginación",
                "parameters": [
                    {"name": "species", "in": "query", "type": "string"},
                    {"name": "age", "in": "query", "type": "string"},
                    {"name": "size", "in": "query", "type": "string"},
                    {"name": "gender", "in": "query", "type": "string"},
                    {"name": "specialNeeds", "in": "query", "type": "string"},
                    {"name": "goodWith", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "sortBy", "in": "query", "type": "string"},
                    {"name": "sortOrder", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Search query too long"}
                }
            },
            "post": {
                "summary": "Alta de mascota (admin)",
                "responses": {
                    "201": {"description": "Created"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "summary": "Perfil de mascota",
                "parameters": [{"name": "petID", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "summary": "Actualización parcial (admin)",
                "parameters": [{"name": "petID", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "summary": "Baja de mascota (admin)",
                "parameters": [{"name": "petID", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/quiz/submit": {
            "post": {
                "summary": "Enviar quiz de matching; reemplaza el resultado previo del usuario",
                "responses": {"200": {"description": "Matches ordenados por score desc"}}
            }
        },
        "/quiz/results": {
            "get": {
                "summary": "Último resultado del usuario",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Sin resultados"}}
            }
        },
        "/applications": {
            "get": {"summary": "Listado de solicitudes (admin)", "responses": {"200": {"description": "OK"}}},
            "post": {
                "summary": "Enviar solicitud de adopción",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Email/edad inválidos"},
                    "409": {"description": "Solicitud activa duplicada"}
                }
            }
        },
        "/applications/{appID}/status": {
            "patch": {
                "summary": "Cambiar estado (admin); approved pasa la mascota a pending",
                "parameters": [{"name": "appID", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/favorites/{petID}": {
            "post": {
                "summary": "Agregar favorito",
                "parameters": [{"name": "petID", "in": "path", "required": true, "type": "string"}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Ya es favorito"}}
            },
            "delete": {
                "summary": "Quitar favorito (no-op si no existe)",
                "parameters": [{"name": "petID", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/appointments": {
            "post": {
                "summary": "Agendar visita",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Slot ocupado"}}
            }
        },
        "/appointments/available-slots": {
            "get": {
                "summary": "Horarios libres de una fecha (09:00 a 17:00)",
                "parameters": [{"name": "date", "in": "query", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/register": {
            "post": {"summary": "Registro", "responses": {"201": {"description": "Created"}, "409": {"description": "Email en uso"}}}
        },
        "/auth/login": {
            "post": {"summary": "Login", "responses": {"200": {"description": "OK"}, "401": {"description": "Credenciales inválidas"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Pet Adoption Portal API",
	Description:      "API REST del portal de adopción: catálogo, quiz de matching, solicitudes, favoritos y visitas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
