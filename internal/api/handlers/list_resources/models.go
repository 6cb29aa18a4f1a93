package list_resources

import "github.com/kittyofheaven/kaizen-booking/internal/domain"

// ResourceView модель ресурса в HTTP ответе
type ResourceView struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// ListResourcesResponse модель ответа со списком ресурсов типа объекта
type ListResourcesResponse struct {
	Kind      string         `json:"kind"`
	Fallback  bool           `json:"fallback"`
	Resources []ResourceView `json:"resources"`
}

// FromResources конвертирует доменные ресурсы в HTTP response
func FromResources(kind domain.ResourceKind, resources []domain.Resource, fallback bool) *ListResourcesResponse {
	views := make([]ResourceView, len(resources))
	for i, res := range resources {
		views[i] = ResourceView{ID: res.ID, DisplayName: res.DisplayName}
	}

	return &ListResourcesResponse{
		Kind:      string(kind),
		Fallback:  fallback,
		Resources: views,
	}
}
