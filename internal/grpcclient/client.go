package grpcclient

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/safiyu/ranthal/internal/logging"
	"github.com/safiyu/ranthal/internal/segmenter"
	proto "github.com/safiyu/ranthal/proto"
)

// DialSegmenter returns a ready-to-use client for the segmentation model
// server. The dial blocks so the process only starts serving transform
// traffic once the model end is reachable.
func DialSegmenter(ctx context.Context, addr string, logger *zap.Logger) (segmenter.Segmenter, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_segmenter", "", err)
		logger.Error("failed to dial segmenter", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewSegmentationServiceClient(conn)
	return &grpcSegmenter{client: client, conn: conn, logger: logger}, conn, nil
}

type grpcSegmenter struct {
	client proto.SegmentationServiceClient
	conn   *grpc.ClientConn
	logger *zap.Logger
}

func (g *grpcSegmenter) Segment(ctx context.Context, tensor []float32, width, height int) ([]float32, error) {
	resp, err := g.client.Segment(ctx, &proto.SegmentRequest{
		Tensor: encodeFloats(tensor),
		Width:  int32(width),
		Height: int32(height),
	})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.segment", "", err)
		g.logger.Error("segmenter call failed", zap.Error(wrapped))
		return nil, wrapped
	}

	saliency, err := decodeFloats(resp.GetSaliency())
	if err != nil {
		return nil, logging.NewOperationError("grpcclient.segment", "", err)
	}
	wantW, wantH := int(resp.GetWidth()), int(resp.GetHeight())
	if wantW == 0 && wantH == 0 {
		wantW, wantH = width, height
	}
	if len(saliency) != wantW*wantH {
		err := fmt.Errorf("saliency map has %d values, want %d", len(saliency), wantW*wantH)
		return nil, logging.NewOperationError("grpcclient.segment", "", err)
	}
	return saliency, nil
}

func (g *grpcSegmenter) Ready() bool {
	return g.conn.GetState() == connectivity.Ready || g.conn.GetState() == connectivity.Idle
}

// The wire carries float32 values as little-endian bytes.

func encodeFloats(values []float32) []byte {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func decodeFloats(data []byte) ([]float32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("float payload length %d is not a multiple of 4", len(data))
	}
	values := make([]float32, len(data)/4)
	for i := range values {
		values[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return values, nil
}
