package handler

import (
	"net/http"

	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"

	"github.com/osse101/MakeServer_Go/internal/logger"
)

// SwaggerIndexPath is where the help route sends callers
const SwaggerIndexPath = "/swagger/index.html"

// HandleHelp redirects to the interactive API docs
// @Summary API help
// @Tags docs
// @Success 307
// @Router /help [get]
func HandleHelp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, SwaggerIndexPath, http.StatusTemporaryRedirect)
	}
}

// HandleOpenAPIYAML serves the registered swagger document as YAML
// @Summary OpenAPI document
// @Tags docs
// @Produce application/yaml
// @Success 200 {string} string
// @Router /openapi.yaml [get]
func HandleOpenAPIYAML() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			respondServiceError(w, r, "Read API doc", err)
			return
		}
		out, err := jsonToYAML([]byte(doc))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to convert API doc", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out)
	}
}

// jsonToYAML re-encodes a JSON document as plain block-style YAML, keeping key order
func jsonToYAML(doc []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(doc, &node); err != nil {
		return nil, err
	}
	blockStyle(&node)
	return yaml.Marshal(&node)
}

// blockStyle drops the flow and quoting styles JSON input carries. The encoder
// still quotes strings that would otherwise read back as another type.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
