package vision

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ONNXNetwork runs the exported breed model. Input "input" is (1,3,224,224),
// output "output" is (1,NumClasses) logits.
type ONNXNetwork struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

// NewONNXNetwork initializes the runtime and loads the model. libPath may be
// empty to use the default onnxruntime shared library lookup.
func NewONNXNetwork(modelPath, libPath string) (*ONNXNetwork, error) {
	if libPath != "" {
		ort.SetSharedLibraryPath(libPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, Channels, Height, Width))
	if err != nil {
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}
	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(NumClasses)))
	if err != nil {
		inputTensor.Destroy()
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create ONNX session for %s: %w", modelPath, err)
	}

	return &ONNXNetwork{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Forward copies in into the bound input tensor and runs the session. The
// bound tensors are shared, so calls are serialized.
func (n *ONNXNetwork) Forward(in Tensor) ([]float32, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	copy(n.inputTensor.GetData(), in)
	if err := n.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}
	out := make([]float32, NumClasses)
	copy(out, n.outputTensor.GetData())
	return out, nil
}

func (n *ONNXNetwork) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.inputTensor != nil {
		n.inputTensor.Destroy()
	}
	if n.outputTensor != nil {
		n.outputTensor.Destroy()
	}
	if n.session != nil {
		n.session.Destroy()
	}
	ort.DestroyEnvironment()
}
