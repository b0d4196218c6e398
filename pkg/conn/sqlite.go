package conn

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Option defines connection options for the SQLite results database.
type Option struct {
	Path   string
	Config *gorm.Config
}

// Client wraps a SQLite connection.
type Client struct {
	opt Option
	db  *gorm.DB
}

// New opens a SQLite database at the configured path, creating the file
// when it does not exist.
func New(option Option) (*Client, error) {
	config := option.Config
	if config == nil {
		config = &gorm.Config{}
	}

	db, err := gorm.Open(sqlite.Open(option.Path), config)
	if err != nil {
		return nil, err
	}

	return &Client{opt: option, db: db}, nil
}

// DB returns the underlying gorm.DB instance.
func (c *Client) DB() *gorm.DB {
	if c == nil {
		return nil
	}
	return c.db
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
