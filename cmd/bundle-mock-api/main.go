package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"bundletui/pkg/mockadmin"
)

func main() {
	var specFile string
	var port int

	flag.StringVar(&specFile, "spec", "docs/api/admin-openapi.yaml", "Path to OpenAPI spec file")
	flag.IntVar(&port, "port", 8081, "Port to listen on")
	flag.Parse()

	ctx := context.Background()
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(specFile)
	if err != nil {
		log.Fatalf("Failed to load spec file %s: %v", specFile, err)
	}

	if err := doc.Validate(ctx); err != nil {
		log.Printf("Warning: Spec validation failed: %v", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		log.Fatalf("Failed to create openapi router: %v", err)
	}

	state := mockadmin.NewMockState()

	// Stateful handlers take priority; anything they don't cover falls
	// back to schema-generated responses.
	r := mockadmin.Router(state)

	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		log.Printf("%s %s", req.Method, req.URL.Path)

		route, _, err := router.FindRoute(req)
		if err != nil {
			log.Printf("Route not found: %v", err)
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}

		if route.Operation == nil {
			log.Printf("Operation is nil")
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		statusCode, respSchema := pickResponse(route.Operation)

		if respSchema == nil {
			w.WriteHeader(statusCode)
			if _, err := w.Write([]byte("{}")); err != nil {
				log.Printf("bundle-mock-api: failed to write empty response: %v", err)
			}
			return
		}

		data := generateMockData(respSchema, 0)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode response: %v", err)
		}
	})

	log.Printf("Starting mock admin server on :%d using spec %s", port, specFile)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}

// pickResponse selects the response to mock: 200 when present, otherwise
// the lowest 2xx, otherwise the default response.
func pickResponse(op *openapi3.Operation) (int, *openapi3.Schema) {
	statusCode := 200
	responses := op.Responses.Map()

	if ref, ok := responses["200"]; ok && ref.Value != nil {
		return statusCode, jsonSchema(ref)
	}

	var keys []string
	for k := range responses {
		if strings.HasPrefix(k, "2") && k != "default" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	if len(keys) > 0 {
		status := keys[0]
		if _, err := fmt.Sscanf(status, "%d", &statusCode); err != nil {
			log.Printf("bundle-mock-api: failed to parse status code %s: %v", status, err)
			statusCode = 200
		}

		return statusCode, jsonSchema(responses[status])
	}

	if def := op.Responses.Default(); def != nil {
		return statusCode, jsonSchema(def)
	}

	return statusCode, nil
}

func jsonSchema(ref *openapi3.ResponseRef) *openapi3.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}

	if content := ref.Value.Content.Get("application/json"); content != nil {
		if content.Schema != nil {
			return content.Schema.Value
		}
	}

	return nil
}

func generateMockData(schema *openapi3.Schema, depth int) interface{} {
	if schema == nil || depth > 10 {
		return nil
	}

	if len(schema.OneOf) > 0 {
		if schema.OneOf[0].Value != nil {
			return generateMockData(schema.OneOf[0].Value, depth+1)
		}
	}
	if len(schema.AnyOf) > 0 {
		if schema.AnyOf[0].Value != nil {
			return generateMockData(schema.AnyOf[0].Value, depth+1)
		}
	}

	if len(schema.AllOf) > 0 {
		result := make(map[string]interface{})
		foundObject := false
		for _, subRef := range schema.AllOf {
			if subRef.Value != nil {
				subData := generateMockData(subRef.Value, depth+1)
				if subMap, ok := subData.(map[string]interface{}); ok {
					foundObject = true
					for k, v := range subMap {
						result[k] = v
					}
				}
			}
		}
		if len(schema.Properties) > 0 {
			localData := generateProperties(schema, depth)
			if localMap, ok := localData.(map[string]interface{}); ok {
				foundObject = true
				for k, v := range localMap {
					result[k] = v
				}
			}
		}
		if foundObject {
			return result
		}
		if len(schema.AllOf) > 0 && schema.AllOf[0].Value != nil {
			return generateMockData(schema.AllOf[0].Value, depth+1)
		}
	}

	if schema.Type != nil {
		if schema.Type.Is("boolean") {
			return true
		}
		if schema.Type.Is("integer") {
			return 1
		}
		if schema.Type.Is("number") {
			return 1.5
		}
		if schema.Type.Is("string") {
			if len(schema.Enum) > 0 {
				return schema.Enum[0]
			}
			if schema.Format == "date-time" {
				return "2024-01-01T00:00:00Z"
			}
			return "mock_string"
		}
		if schema.Type.Is("array") {
			if schema.Items != nil && schema.Items.Value != nil {
				return []interface{}{generateMockData(schema.Items.Value, depth+1)}
			}
			return []interface{}{}
		}
		if schema.Type.Is("object") {
			return generateProperties(schema, depth)
		}
	}

	if len(schema.Properties) > 0 {
		return generateProperties(schema, depth)
	}

	return nil
}

func generateProperties(schema *openapi3.Schema, depth int) interface{} {
	res := make(map[string]interface{})
	for name, propRef := range schema.Properties {
		if propRef.Value != nil {
			res[name] = generateMockData(propRef.Value, depth+1)
		}
	}
	return res
}
