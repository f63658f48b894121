package dataset

import (
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/internal/domain"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrUnsupportedFormat = errors.New("formato de dataset não suportado")

// Load retorna o dataset do arquivo informado ou o exemplo embutido quando path é vazio
func Load(path string) (*domain.CreatorDataset, error) {
	if path == "" {
		logrus.Debug("dataset: usando dataset de exemplo")
		return Sample(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "lendo dataset %s", path)
	}

	ds, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "interpretando dataset %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"path":     path,
		"products": len(ds.Products),
		"posts":    len(ds.TopPosts),
	}).Info("dataset: arquivo carregado")

	return ds, nil
}

// Parse decodifica um dataset em JSON (.json) ou YAML (.yaml/.yml)
func Parse(data []byte, ext string) (*domain.CreatorDataset, error) {
	ds := &domain.CreatorDataset{}

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, ds); err != nil {
			return nil, errors.Wrap(err, "json inválido")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, ds); err != nil {
			return nil, errors.Wrap(err, "yaml inválido")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "extensão %q", ext)
	}

	if err := Validate(ds); err != nil {
		return nil, err
	}

	return ds, nil
}

// Validate rejeita valores que tornariam os templates inconsistentes.
// Listas vazias são aceitas: o motor de consultas responde com fallback.
func Validate(ds *domain.CreatorDataset) error {
	for i, product := range ds.Products {
		if product.Name == "" {
			return errors.Errorf("produto %d sem nome", i)
		}
		if product.Category == "" {
			return errors.Errorf("produto %q sem categoria", product.Name)
		}
		if product.ConversionRate < 0 || product.ConversionRate > 1 {
			return errors.Errorf("produto %q com taxa de conversão fora de [0,1]: %v", product.Name, product.ConversionRate)
		}
	}

	for i, post := range ds.TopPosts {
		if post.Title == "" {
			return errors.Errorf("post %d sem título", i)
		}
	}

	return nil
}
