package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"riftstats/internal/model"
)

// DefaultDataDragonURL is the static data CDN
const DefaultDataDragonURL = "https://ddragon.leagueoflegends.com"

// championData is one entry of champion.json
type championData struct {
	ID   string   `json:"id"`
	Key  string   `json:"key"` // numeric champion id as a string
	Name string   `json:"name"`
	Tags []string `json:"tags"` // class tags, e.g. "Mage", "Assassin"
}

// DataDragon fetches the static champion catalog
type DataDragon struct {
	baseURL    string
	httpClient *http.Client
}

// NewDataDragon creates a Data Dragon client. An empty baseURL selects the public CDN.
func NewDataDragon(baseURL string) *DataDragon {
	if baseURL == "" {
		baseURL = DefaultDataDragonURL
	}
	return &DataDragon{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// LatestVersion returns the newest static data version
func (d *DataDragon) LatestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := d.getJSON(ctx, d.baseURL+"/api/versions.json", &versions); err != nil {
		return "", fmt.Errorf("failed to fetch versions: %w", err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("no versions available")
	}
	return versions[0], nil
}

// Champions returns the champion catalog for a version, sorted by champion id.
// An empty version selects the latest one.
func (d *DataDragon) Champions(ctx context.Context, version string) ([]model.Champion, error) {
	if version == "" {
		v, err := d.LatestVersion(ctx)
		if err != nil {
			return nil, err
		}
		version = v
	}

	var champData struct {
		Data map[string]championData `json:"data"`
	}
	champURL := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", d.baseURL, version)
	if err := d.getJSON(ctx, champURL, &champData); err != nil {
		return nil, fmt.Errorf("failed to fetch champions: %w", err)
	}

	champions := make([]model.Champion, 0, len(champData.Data))
	for _, champ := range champData.Data {
		key, err := strconv.Atoi(champ.Key)
		if err != nil {
			continue
		}
		champions = append(champions, model.Champion{
			ChampionID: key,
			Name:       champ.Name,
			Classes:    champ.Tags,
		})
	}
	sort.Slice(champions, func(i, j int) bool {
		return champions[i].ChampionID < champions[j].ChampionID
	})
	return champions, nil
}

func (d *DataDragon) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
