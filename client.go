package robot

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/iwtcode/robotActions/action"
	apperrors "github.com/iwtcode/robotActions/pkg/errors"
	"github.com/iwtcode/robotActions/record"
	"github.com/iwtcode/robotActions/registry"
)

// Client является основной точкой входа для взаимодействия с библиотекой.
// Он объединяет реестры символов, реестр генераторов команд и хранилище
// действий. Реестры загружаются один раз при создании клиента.
type Client struct {
	regs     *registry.Registries
	register action.CommandRegister
	store    action.Store
	config   *Config
	logger   *logrus.Logger
}

// New создает и возвращает новый экземпляр клиента. Реестры символов
// загружаются из YAML-файлов, указанных в конфигурации.
func New(cfg *Config) (*Client, error) {
	logger := logrus.New()

	if cfg.LogLevel == "off" || cfg.LogLevel == "none" {
		logger.SetOutput(io.Discard)
	} else {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		logger.SetLevel(level)
		logger.SetOutput(os.Stdout)
	}

	// Настраиваем форматтер с понятным форматом времени
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	regs, err := registry.Load(cfg.EquipmentFile, cfg.ReferenceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load symbol registries: %w", err)
	}
	logger.Debugf("Symbol registries loaded: %d equipment kinds, %d reference kinds",
		regs.Equipment.Kinds(), regs.Reference.Kinds())

	return &Client{
		regs:     regs,
		register: make(action.CommandRegister),
		config:   cfg,
		logger:   logger,
	}, nil
}

// ParseAction разбирает сериализованное действие.
func (c *Client) ParseAction(rec record.Record) (*action.Action, error) {
	a, err := action.Parse(rec, c.regs)
	if err != nil {
		c.logger.WithError(err).Error("Action parsing failed")
		return nil, err
	}
	return a, nil
}

// Commands строит команды контроллера для разобранного действия.
func (c *Client) Commands(a *action.Action) ([]record.Record, error) {
	return a.Commands(c.register)
}

// RegisterGenerator регистрирует генератор команд для типа действия.
func (c *Client) RegisterGenerator(actionType string, gen action.Generator) {
	c.register.Register(actionType, gen)
}

// SetStore задает хранилище сериализованных действий.
func (c *Client) SetStore(store action.Store) {
	c.store = store
}

// ActionFromStore загружает действие из хранилища по идентификатору.
func (c *Client) ActionFromStore(id string) (*action.Action, error) {
	if c.store == nil {
		return nil, fmt.Errorf("action store is not configured: %w", apperrors.ErrMissingField)
	}
	return action.FromStore(c.store, c.regs, id)
}

// Registries возвращает загруженные реестры символов.
func (c *Client) Registries() *registry.Registries {
	return c.regs
}

// GetLogger возвращает используемый логгер.
func (c *Client) GetLogger() *logrus.Logger {
	return c.logger
}
