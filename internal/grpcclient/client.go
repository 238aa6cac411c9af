package grpcclient

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/example/smartscale/internal/classifier"
	"github.com/example/smartscale/internal/logging"
	"github.com/example/smartscale/internal/metrics"
)

// The classifier service speaks google.protobuf.Struct in both directions so
// the scale does not need generated stubs for a model-specific schema.
const (
	classifyMethod  = "/smartscale.classifier.v1.Classifier/Classify"
	modelInfoMethod = "/smartscale.classifier.v1.Classifier/GetModelInfo"
)

// DialClassifier returns a ready-to-use gRPC client for the classifier service.
func DialClassifier(ctx context.Context, addr string, timeout time.Duration, logger *zap.Logger) (classifier.Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_classifier", "", err)
		logger.Error("failed to dial classifier", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	return newClassifier(conn, logger), conn, nil
}

func newClassifier(conn grpc.ClientConnInterface, logger *zap.Logger) *grpcClassifier {
	return &grpcClassifier{conn: conn, logger: logger.Named("classifier_client")}
}

type grpcClassifier struct {
	conn   grpc.ClientConnInterface
	logger *zap.Logger
}

func (g *grpcClassifier) Classify(ctx context.Context, image []byte, topK int) (*classifier.Result, error) {
	req, err := structpb.NewStruct(map[string]any{
		"image": base64.StdEncoding.EncodeToString(image),
		"top_k": topK,
	})
	if err != nil {
		return nil, logging.NewOperationError("grpcclient.classify", "", err)
	}

	resp := &structpb.Struct{}
	if err := g.invoke(ctx, "classify", classifyMethod, req, resp); err != nil {
		if status.Code(err) == codes.InvalidArgument {
			err = fmt.Errorf("%w: %s", classifier.ErrUndecodableImage, status.Convert(err).Message())
		}
		wrapped := logging.NewOperationError("grpcclient.classify", "", err)
		g.logger.Error("classifier call failed", zap.Error(wrapped), zap.Int("image_bytes", len(image)))
		return nil, wrapped
	}

	predictions, err := decodePredictions(resp)
	if err != nil {
		return nil, logging.NewOperationError("grpcclient.classify", "", err)
	}
	return &classifier.Result{Predictions: classifier.Rank(predictions, topK)}, nil
}

func (g *grpcClassifier) ModelInfo(ctx context.Context) (*classifier.ModelInfo, error) {
	resp := &structpb.Struct{}
	if err := g.invoke(ctx, "model_info", modelInfoMethod, &structpb.Struct{}, resp); err != nil {
		wrapped := logging.NewOperationError("grpcclient.model_info", "", err)
		g.logger.Error("model info call failed", zap.Error(wrapped))
		return nil, wrapped
	}
	return decodeModelInfo(resp), nil
}

func (g *grpcClassifier) invoke(ctx context.Context, name, method string, req, resp *structpb.Struct) error {
	start := time.Now()
	err := g.conn.Invoke(ctx, method, req, resp)
	metrics.ObserveDuration(metrics.ClassifierRequestDuration, start, name)
	metrics.IncClassifierRequest(name, status.Code(err).String())
	return err
}

func decodePredictions(resp *structpb.Struct) ([]classifier.Prediction, error) {
	raw, ok := resp.GetFields()["predictions"]
	if !ok {
		return nil, fmt.Errorf("classifier response has no predictions field")
	}
	list := raw.GetListValue()
	if list == nil {
		return nil, fmt.Errorf("classifier predictions is not a list")
	}

	predictions := make([]classifier.Prediction, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		fields := v.GetStructValue().GetFields()
		label := fields["label"].GetStringValue()
		if label == "" {
			return nil, fmt.Errorf("prediction %d has no label", i)
		}
		predictions = append(predictions, classifier.Prediction{
			Label:      label,
			Confidence: fields["confidence"].GetNumberValue(),
			ClassID:    int(fields["class_id"].GetNumberValue()),
		})
	}
	return predictions, nil
}

func decodeModelInfo(resp *structpb.Struct) *classifier.ModelInfo {
	info := &classifier.ModelInfo{Labels: []string{}}
	for key, v := range resp.GetFields() {
		switch key {
		case "name":
			info.Name = v.GetStringValue()
		case "version":
			info.Version = v.GetStringValue()
		case "num_classes":
			info.NumClasses = int(v.GetNumberValue())
		case "input_size":
			for _, dim := range v.GetListValue().GetValues() {
				info.InputSize = append(info.InputSize, int(dim.GetNumberValue()))
			}
		case "labels":
			for _, label := range v.GetListValue().GetValues() {
				info.Labels = append(info.Labels, label.GetStringValue())
			}
		default:
			if info.Metadata == nil {
				info.Metadata = make(map[string]any)
			}
			info.Metadata[key] = v.AsInterface()
		}
	}
	if info.NumClasses == 0 {
		info.NumClasses = len(info.Labels)
	}
	return info
}
