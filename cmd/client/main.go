package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"ai-planner-backend/model"
	"ai-planner-backend/response"
	"ai-planner-backend/service/calendar"
	"ai-planner-backend/utils"

	"github.com/spf13/cobra"
)

var (
	serverURL  string
	httpClient = utils.NewHTTPClient(utils.WithTimeout(300 * time.Second))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "planner",
		Short: "AI日程规划终端客户端",
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:3000", "backend server url")

	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(plansCmd())
	rootCmd.AddCommand(weekCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(historyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "进入对话模式",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("欢迎使用AI智能日程规划！请告诉我您的安排。(输入 exit 退出)")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				message := strings.TrimSpace(scanner.Text())
				if message == "" {
					continue
				}
				if message == "exit" {
					return nil
				}

				var resp response.ChatResponse
				err := postJSON("/chat", map[string]string{"message": message}, &resp)
				if err != nil {
					fmt.Printf("抱歉，与AI通信时发生错误：%v 请稍后再试。\n", err)
					continue
				}
				printChatResponse(resp)
			}
		},
	}
}

func printChatResponse(resp response.ChatResponse) {
	switch {
	case resp.Type == "recipe" && resp.Recipe != nil:
		fmt.Println(formatRecipe(*resp.Recipe))
	case resp.Reply != "":
		fmt.Println(resp.Reply)
	default:
		fmt.Println("抱歉，未能获取到有效的AI回复。")
	}
}

// formatRecipe 把食谱排版成纯文本
func formatRecipe(r model.Recipe) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "食谱推荐：%s (%s)\n", r.Name, r.Cuisine)
	if r.HealthTip != "" {
		fmt.Fprintf(&sb, "\n健康小贴士：%s\n", r.HealthTip)
	}
	sb.WriteString("\n食材：\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&sb, "• %s\n", ing)
	}
	sb.WriteString("\n步骤：\n")
	for i, inst := range r.Instructions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, inst)
	}
	sb.WriteString("\n希望你喜欢这份食谱！")
	return sb.String()
}

func plansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "查看规划本",
		RunE: func(cmd *cobra.Command, args []string) error {
			var plans []model.PlanEntry
			if err := getJSON("/get_plans", &plans); err != nil {
				return err
			}

			now := time.Now()
			plans = calendar.FilterStale(plans, now)
			if len(plans) == 0 {
				fmt.Println("暂无规划。")
				return nil
			}

			for _, p := range plans {
				if d, err := time.Parse(calendar.DateLayout, p.Date); err == nil {
					countdown := calendar.CountdownTo(d, now)
					fmt.Printf("%s (%s)  %s  [%s]\n", p.Date, countdown.Text(), p.Item, p.ID)
				} else {
					fmt.Printf("%s  %s  [%s]\n", p.Date, p.Item, p.ID)
				}
			}
			return nil
		},
	}
}

func weekCmd() *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "week",
		Short: "查看周历",
		RunE: func(cmd *cobra.Command, args []string) error {
			var view calendar.WeekView
			if err := getJSON(fmt.Sprintf("/week?offset=%d", offset), &view); err != nil {
				return err
			}

			fmt.Println(view.Title)
			for _, day := range view.Days {
				marker := " "
				if day.IsToday {
					marker = "*"
				}
				fmt.Printf("%s %s %s\n", marker, day.Weekday, day.Date)
				for _, event := range day.Events {
					fmt.Printf("    - %s\n", event)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "week offset from today")
	return cmd
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [date] [item]",
		Short: "手动添加规划",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp response.AddPlanResponse
			body := map[string]string{
				"date": args[0],
				"item": strings.Join(args[1:], " "),
			}
			if err := postJSON("/add_plan", body, &resp); err != nil {
				return fmt.Errorf("添加规划失败：%w", err)
			}
			fmt.Printf("规划事项添加成功！[%s]\n", resp.Plan.ID)
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "删除规划",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp response.DeletePlanResponse
			if err := postJSON("/delete_plan", map[string]string{"id": args[0]}, &resp); err != nil {
				return fmt.Errorf("删除规划失败：%w", err)
			}
			fmt.Println("规划事项删除成功！")
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "查看完整对话历史",
		RunE: func(cmd *cobra.Command, args []string) error {
			var history []model.HistoryRecord
			if err := getJSON("/history", &history); err != nil {
				return err
			}

			for _, record := range history {
				label := "AI"
				if record.Role == model.RoleUser {
					label = "我"
				}
				fmt.Printf("%s: %s\n", label, record.Content)
			}
			return nil
		},
	}
}

func getJSON(path string, out any) error {
	resp, err := httpClient.Get(serverURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeResponse(resp, out)
}

func postJSON(path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := httpClient.Post(serverURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp response.ErrorResponse
		if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("后端服务返回错误: %s", resp.Status)
	}

	return json.Unmarshal(data, out)
}
