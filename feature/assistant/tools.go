package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"storage-assistant/core/llm"
	"storage-assistant/core/utils"

	"go.uber.org/zap"
)

// ErrUnknownTool is returned when a requested tool name is not registered.
var ErrUnknownTool = errors.New("unknown tool")

// ToolHandler executes one tool invocation. Handlers always produce text: the
// conversation has no channel for structured errors, so failures are demoted
// to descriptive strings the model can react to.
type ToolHandler func(ctx context.Context, args map[string]any) string

// Registry is the closed set of named operations the model may request.
// It preserves registration order for the tool spec list sent to the model.
type Registry struct {
	specs    []llm.ToolSpec
	handlers map[string]ToolHandler
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]ToolHandler)}
}

// Register adds a tool. Duplicate names are rejected here, at startup, rather
// than surfacing as ambiguity at call time.
func (r *Registry) Register(spec llm.ToolSpec, h ToolHandler) error {
	if spec.Name == "" {
		return fmt.Errorf("tool name is empty")
	}
	if h == nil {
		return fmt.Errorf("tool %s has no handler", spec.Name)
	}
	if _, exists := r.handlers[spec.Name]; exists {
		return fmt.Errorf("tool %s already registered", spec.Name)
	}
	r.handlers[spec.Name] = h
	r.specs = append(r.specs, spec)
	return nil
}

// Specs returns the declared tools in registration order.
func (r *Registry) Specs() []llm.ToolSpec {
	return r.specs
}

// Execute runs the named tool. An unregistered name yields ErrUnknownTool;
// the orchestrator turns that into a synthesized tool result instead of
// failing the cycle.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	h, exists := r.handlers[strings.ToLower(name)]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return h(ctx, args), nil
}

// RegisterStorageTools declares the six storage tools on the registry, each
// adapting model-supplied arguments into a BucketManager call and rendering
// the result as text. Listings destined for the model are serialized as JSON
// with ISO-8601 timestamps and byte-exact sizes.
func RegisterStorageTools(r *Registry, manager *BucketManager, logger *zap.Logger) error {
	tools := []struct {
		spec    llm.ToolSpec
		handler ToolHandler
	}{
		{
			spec: llm.ToolSpec{
				Name:        "list_buckets",
				Description: "Lists all buckets in the storage account with their names and creation dates.",
			},
			handler: func(ctx context.Context, args map[string]any) string {
				buckets, err := manager.ListBuckets(ctx)
				if err != nil {
					return fmt.Sprintf("Failed to list buckets - %s", err)
				}
				if len(buckets) == 0 {
					return "No buckets found."
				}
				return toJSON(buckets)
			},
		},
		{
			spec: llm.ToolSpec{
				Name:        "list_objects",
				Description: "Lists objects within a specific bucket along with their sizes in bytes.",
				Params: []llm.Param{
					{Name: "bucket_name", Type: "string", Description: "The name of the bucket to list objects from.", Required: true},
					{Name: "max_keys", Type: "integer", Description: "Maximum number of objects to return. Defaults to 1000."},
				},
			},
			handler: func(ctx context.Context, args map[string]any) string {
				bucketName := utils.ToString(args["bucket_name"])
				if bucketName == "" {
					return "Missing required argument: bucket_name"
				}
				objects, err := manager.ListObjects(ctx, bucketName, utils.ToInt(args["max_keys"]))
				if err != nil {
					return fmt.Sprintf("Failed to list objects in %s - %s", bucketName, err)
				}
				if len(objects) == 0 {
					return fmt.Sprintf("No objects found in bucket %s.", bucketName)
				}
				return toJSON(objects)
			},
		},
		{
			spec: llm.ToolSpec{
				Name:        "upload_file",
				Description: "Uploads a local file to a specified bucket.",
				Params: []llm.Param{
					{Name: "local_file_path", Type: "string", Description: "The local file path of the file to upload.", Required: true},
					{Name: "bucket_name", Type: "string", Description: "The name of the bucket where the file will be uploaded.", Required: true},
					{Name: "object_name", Type: "string", Description: "The object name to use in storage. Defaults to the file name."},
				},
			},
			handler: func(ctx context.Context, args map[string]any) string {
				filePath := utils.ToString(args["local_file_path"])
				bucketName := utils.ToString(args["bucket_name"])
				if filePath == "" {
					return "Missing required argument: local_file_path"
				}
				if bucketName == "" {
					return "Missing required argument: bucket_name"
				}
				objectName, err := manager.UploadFile(ctx, filePath, bucketName, utils.ToString(args["object_name"]))
				if err != nil {
					return fmt.Sprintf("Failed to upload file %s - %s", filePath, err)
				}
				return fmt.Sprintf("File %s uploaded to bucket %s as %s", filePath, bucketName, objectName)
			},
		},
		{
			spec: llm.ToolSpec{
				Name:        "download_file",
				Description: "Downloads a file from a specified bucket to the local system.",
				Params: []llm.Param{
					{Name: "file_name", Type: "string", Description: "The name of the file to download.", Required: true},
					{Name: "bucket_name", Type: "string", Description: "The name of the bucket to download from.", Required: true},
				},
			},
			handler: func(ctx context.Context, args map[string]any) string {
				fileName := utils.ToString(args["file_name"])
				bucketName := utils.ToString(args["bucket_name"])
				if fileName == "" {
					return "Missing required argument: file_name"
				}
				if bucketName == "" {
					return "Missing required argument: bucket_name"
				}
				if err := manager.DownloadFile(ctx, fileName, bucketName); err != nil {
					return fmt.Sprintf("Failed to download file %s - %s", fileName, err)
				}
				return fmt.Sprintf("File %s downloaded from bucket %s", fileName, bucketName)
			},
		},
		{
			spec: llm.ToolSpec{
				Name:        "remove_file",
				Description: "Removes a file from a specified bucket.",
				Params: []llm.Param{
					{Name: "file_name", Type: "string", Description: "The name of the file to remove.", Required: true},
					{Name: "bucket_name", Type: "string", Description: "The name of the bucket to remove from.", Required: true},
				},
			},
			handler: func(ctx context.Context, args map[string]any) string {
				fileName := utils.ToString(args["file_name"])
				bucketName := utils.ToString(args["bucket_name"])
				if fileName == "" {
					return "Missing required argument: file_name"
				}
				if bucketName == "" {
					return "Missing required argument: bucket_name"
				}
				if err := manager.RemoveFile(ctx, fileName, bucketName); err != nil {
					return fmt.Sprintf("Failed to remove file %s - %s", fileName, err)
				}
				return fmt.Sprintf("File %s removed from bucket %s", fileName, bucketName)
			},
		},
		{
			spec: llm.ToolSpec{
				Name:        "search_objects",
				Description: "Searches for objects across all buckets whose keys match the search term.",
				Params: []llm.Param{
					{Name: "search_term", Type: "string", Description: "The term to search for in object keys, case-insensitive.", Required: true},
				},
			},
			handler: func(ctx context.Context, args map[string]any) string {
				searchTerm := utils.ToString(args["search_term"])
				if searchTerm == "" {
					return "Missing required argument: search_term"
				}
				matches, err := manager.SearchObjects(ctx, searchTerm)
				if err != nil {
					return fmt.Sprintf("Failed to search objects - %s", err)
				}
				if len(matches) == 0 {
					return fmt.Sprintf("No objects found matching '%s'", searchTerm)
				}
				lines := make([]string, 0, len(matches))
				for _, m := range matches {
					lines = append(lines, fmt.Sprintf("Bucket: %s, Object: %s", m.Bucket, m.Object))
				}
				return strings.Join(lines, "\n")
			},
		},
	}

	for _, t := range tools {
		if err := r.Register(t.spec, t.handler); err != nil {
			return err
		}
	}

	logger.Debug("Registered storage tools", zap.Int("count", len(tools)))
	return nil
}

func toJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("Failed to serialize result: %v", err)
	}
	return string(data)
}
