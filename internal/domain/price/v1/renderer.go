package v1

//go:generate mockgen -source=renderer.go -destination=mock/renderer_mock.go -package=mock

// ChartRenderer draws a close-price series to an image file.
type ChartRenderer interface {
	Render(points []*ClosePoint, spec ChartSpec) error
}
