package logger_test

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/Luis23345432/Ingesta-Hotel2/logger"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	log := logger.NewLogger("test-service", "debug", true)

	It("Should have `test-service` as service name", func() {
		logOutput := bytes.NewBufferString("")
		log.SetOutput(logOutput)

		log.Info("Testing")
		var actual map[string]interface{}
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())

		Expect(actual["service"]).To(Equal("test-service"))
	})

	It("Should have info as log level", func() {
		logOutput := bytes.NewBufferString("")
		log.SetOutput(logOutput)

		log.Info("Testing")
		var actual map[string]interface{}
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())

		Expect(actual["level"]).To(Equal("info"))
	})

	It("Should have warn as log level", func() {
		logOutput := bytes.NewBufferString("")
		log.SetOutput(logOutput)

		log.Warn("Testing")
		var actual map[string]interface{}
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())

		Expect(actual["level"]).To(Equal("warning"))
	})

	It("Should have error as log level with a stack trace", func() {
		logOutput := bytes.NewBufferString("")
		log.SetOutput(logOutput)

		log.Error("Testing")
		var actual map[string]interface{}
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())

		Expect(actual["level"]).To(Equal("error"))
		Expect(actual["stackTrace"]).ToNot(BeNil())
	})

	It("Should add job fields without changing the parent", func() {
		logOutput := bytes.NewBufferString("")
		log.SetOutput(logOutput)

		job := log.WithFields(map[string]interface{}{"entity": "rooms", "stage": "dev"})
		job.Info("Testing")
		var actual map[string]interface{}
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())
		Expect(actual["entity"]).To(Equal("rooms"))
		Expect(actual["stage"]).To(Equal("dev"))
		Expect(actual["service"]).To(Equal("test-service"))

		logOutput.Reset()
		log.Info("Testing")
		actual = nil
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())
		Expect(actual).ToNot(HaveKey("entity"))
	})

	It("Should fall back to info for an unknown level", func() {
		l := logger.NewLogger("test-service", "chatty", false)
		Expect(l.LogLevelStr).To(Equal("info"))
	})

	It("Should duplicate output to a log file", func() {
		dir, err := ioutil.TempDir("", "logger-test-")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(dir)
		fileName := filepath.Join(dir, "logs", "ingesta.log")

		l := logger.NewLogger("test-service", "info", false)
		Expect(l.AddFileOutput(fileName)).To(Succeed())
		l.Info("written to file")
		Expect(l.Close()).To(Succeed())

		b, err := ioutil.ReadFile(fileName)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(b)).To(ContainSubstring("written to file"))
	})
})
