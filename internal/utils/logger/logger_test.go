package logger

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/drxlabs/drx-backend/internal/types/environments"
)

func TestLogger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Logger Suite")
}

var _ = Describe("Logger", func() {
	Describe("#New", func() {
		It("should create a new logger for every environment", func() {
			for _, env := range []environments.Environment{
				environments.Production,
				environments.Staging,
				environments.Development,
				environments.Test,
			} {
				logger := New(env)
				Expect(logger).NotTo(BeNil())
				Expect(logger.wrappedLogger).NotTo(BeNil())
			}
		})

		It("should fall back to production config for unknown environments", func() {
			logger := New(environments.Environment("unknown"))
			Expect(logger).NotTo(BeNil())
		})
	})
})

var _ = Describe("Logger Environment", func() {
	Describe("#newProductionLoggerConfig", func() {
		It("should return the correct production logger configuration", func() {
			cfg := newProductionLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.InfoLevel))
			Expect(cfg.Development).To(BeFalse())
			Expect(cfg.Encoding).To(Equal("json"))
			Expect(cfg.OutputPaths).To(Equal([]string{"stdout"}))
			Expect(cfg.ErrorOutputPaths).To(Equal([]string{"stderr"}))
		})
	})

	Describe("#newStagingLoggerConfig", func() {
		It("should return the correct staging logger configuration", func() {
			cfg := newStagingLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.InfoLevel))
			Expect(cfg.DisableCaller).To(BeTrue())
			Expect(cfg.DisableStacktrace).To(BeTrue())
			Expect(cfg.Encoding).To(Equal("json"))
		})
	})

	Describe("#newDevelopmentLoggerConfig", func() {
		It("should return the correct development logger configuration", func() {
			cfg := newDevelopmentLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.DebugLevel))
			Expect(cfg.Development).To(BeTrue())
			Expect(cfg.Encoding).To(Equal("console"))
		})
	})

	Describe("#newTestLoggerConfig", func() {
		It("should return the correct test logger configuration", func() {
			cfg := newTestLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.InfoLevel))
			Expect(cfg.OutputPaths).To(BeEmpty())
			Expect(cfg.ErrorOutputPaths).To(BeEmpty())
		})
	})
})
