package logger

const StartupMsg = "啟動 env:%s variant:%s backend:%s tickRate:%d seed:%d sound:%t"
const BackendMsg = "使用 %s 顯示"

const MatchStartMsg = "比賽開始"
const PointMsg = "%s 得分！ 比數 %d:%d"
const GameOverMsg = "遊戲結束 比數 %d:%d"
const PhaseMsg = "狀態 %s -> %s"
const ExitMsg = "離開遊戲"

const SoundInitFailedMsg = "音效初始化失敗，改為靜音: %v"
const FatalErrMsg = "無法執行: %v"
