package singleton

import (
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAndLock_FreePort(t *testing.T) {
	// 先探出一个空闲端口
	probe, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	port := fmt.Sprintf(":%d", probe.Addr().(*net.TCPAddr).Port)
	require.NoError(t, probe.Close())

	listener, err := CheckAndLock(port)
	require.NoError(t, err)
	require.NotNil(t, listener)
	_ = listener.Close()
}

func TestCheckAndLock_HealthyInstanceRunning(t *testing.T) {
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	port := fmt.Sprintf(":%d", listener.Addr().(*net.TCPAddr).Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := &http.Server{Handler: mux}
	go func() { _ = srv.Serve(listener) }()
	t.Cleanup(func() { _ = srv.Close() })

	got, err := CheckAndLock(port)
	assert.NoError(t, err)
	assert.Nil(t, got, "已有健康实例时应返回 nil listener 提示退出")
}

func TestCheckAndLock_UnhealthyOccupant(t *testing.T) {
	// 占用端口但不响应 HTTP
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })
	port := fmt.Sprintf(":%d", listener.Addr().(*net.TCPAddr).Port)

	_, err = CheckAndLock(port)
	assert.Error(t, err)
}
